package repository

import (
	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// CreatePO inserts the order together with its items.
func (r *PurchaseRepository) CreatePO(po *entity.PurchaseOrder) error {
	return r.db.Create(po).Error
}

func (r *PurchaseRepository) GetPOByID(id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items").
		Where("id = ?", id).First(&po).Error
	return &po, err
}

func (r *PurchaseRepository) UpdatePO(po *entity.PurchaseOrder) error {
	return r.db.Save(po).Error
}

type POListParams struct {
	Status     string
	SupplierID string
	Page       int
	Size       int
}

// ListPOs returns orders in creation order, optionally filtered by exact
// status match.
func (r *PurchaseRepository) ListPOs(params POListParams) ([]entity.PurchaseOrder, int64, error) {
	query := r.db.Model(&entity.PurchaseOrder{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.SupplierID != "" {
		query = query.Where("supplier_id = ?", params.SupplierID)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var pos []entity.PurchaseOrder
	err := query.Preload("Supplier").Preload("Items").Order("created_at ASC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&pos).Error
	return pos, total, err
}

func (r *PurchaseRepository) GetPOItemsByPOID(poID string) ([]entity.PurchaseOrderItem, error) {
	var items []entity.PurchaseOrderItem
	err := r.db.Where("purchase_order_id = ?", poID).Order("created_at ASC").Find(&items).Error
	return items, err
}

// DB returns the underlying handle for workflows that need their own
// transaction boundary.
func (r *PurchaseRepository) DB() *gorm.DB {
	return r.db
}
