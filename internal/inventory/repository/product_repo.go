package repository

import (
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&p).Error
	return &p, err
}

func (r *ProductRepository) CountBySKU(sku string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Product{}).
		Where("sku = ? AND deleted_at IS NULL", sku).Count(&count).Error
	return count, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id string) error {
	now := time.Now()
	return r.db.Model(&entity.Product{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", &now).Error
}

type ProductListParams struct {
	Keyword  string
	LowStock bool
	Page     int
	Size     int
}

func (r *ProductRepository) List(params ProductListParams) ([]entity.Product, int64, error) {
	query := r.db.Model(&entity.Product{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", kw, kw)
	}
	if params.LowStock {
		query = query.Where("reorder_needed = true")
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var products []entity.Product
	err := query.Order("created_at ASC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&products).Error
	return products, total, err
}

// GetAlerts returns products whose stock has fallen below the reorder
// threshold.
func (r *ProductRepository) GetAlerts() ([]entity.Product, error) {
	var alerts []entity.Product
	err := r.db.Where("reorder_needed = true AND deleted_at IS NULL").
		Order("created_at ASC").Find(&alerts).Error
	return alerts, err
}
