package service

import (
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required"`
	Description      string          `json:"description"`
	SKU              string          `json:"sku" binding:"required"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	CurrentStock     int             `json:"current_stock"`
	ReorderThreshold int             `json:"reorder_threshold"`
}

func (s *ProductService) Create(req CreateProductRequest, actor Actor) (*entity.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	}
	if req.CurrentStock < 0 {
		return nil, fmt.Errorf("%w: current stock must not be negative", ErrInvalidArgument)
	}
	count, err := s.repo.CountBySKU(req.SKU)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: SKU %s already exists", ErrInvalidArgument, req.SKU)
	}

	threshold := req.ReorderThreshold
	if threshold == 0 {
		threshold = 5
	}

	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Description:      req.Description,
		SKU:              req.SKU,
		Price:            req.Price,
		CurrentStock:     req.CurrentStock,
		ReorderThreshold: threshold,
		CreatedBy:        actor.ID,
	}
	product.RecomputeReorder()

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Get(id string) (*entity.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	return s.repo.List(params)
}

// Alerts lists products whose stock has fallen below the reorder threshold.
func (s *ProductService) Alerts() ([]entity.Product, error) {
	return s.repo.GetAlerts()
}

type UpdateProductRequest struct {
	Name             string           `json:"name"`
	Description      *string          `json:"description"`
	Price            *decimal.Decimal `json:"price"`
	CurrentStock     *int             `json:"current_stock"`
	ReorderThreshold *int             `json:"reorder_threshold"`
}

// Update edits catalog attributes. Stock and threshold edits recompute the
// reorder flag; it is never settable directly.
func (s *ProductService) Update(id string, req UpdateProductRequest) (*entity.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
		}
		product.Price = *req.Price
	}
	if req.CurrentStock != nil {
		if *req.CurrentStock < 0 {
			return nil, fmt.Errorf("%w: current stock must not be negative", ErrInvalidArgument)
		}
		product.CurrentStock = *req.CurrentStock
	}
	if req.ReorderThreshold != nil {
		product.ReorderThreshold = *req.ReorderThreshold
	}
	product.RecomputeReorder()

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
