package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryService reads the ledger and applies manual stock adjustments.
type InventoryService struct {
	ledgerRepo *repository.LedgerRepository
	db         *gorm.DB
}

func NewInventoryService(lr *repository.LedgerRepository, db *gorm.DB) *InventoryService {
	return &InventoryService{ledgerRepo: lr, db: db}
}

func (s *InventoryService) ListTransactions(productID string, page, size int) ([]entity.InventoryTransaction, int64, error) {
	return s.ledgerRepo.ListTransactions(productID, page, size)
}

type AdjustRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"` // positive = in, negative = out
	Reference string `json:"reference"`
}

// Adjust applies a signed stock correction, appends a ledger row and
// recomputes the reorder flag, all in one transaction. Adjustments that
// would drive stock negative are rejected.
func (s *InventoryService) Adjust(ctx context.Context, req AdjustRequest, actor Actor) (*entity.Product, error) {
	if req.Quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must not be zero", ErrInvalidArgument)
	}
	reference := req.Reference
	if reference == "" {
		reference = "Manual Adjustment"
	}

	var product entity.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND deleted_at IS NULL", req.ProductID).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %s", ErrNotFound, req.ProductID)
			}
			return err
		}
		if product.CurrentStock+req.Quantity < 0 {
			return fmt.Errorf("%w: adjustment would drive stock below zero (current %d)", ErrInvalidArgument, product.CurrentStock)
		}

		product.CurrentStock += req.Quantity
		product.RecomputeReorder()
		if err := tx.Model(&entity.Product{}).
			Where("id = ?", product.ID).
			Updates(map[string]interface{}{
				"current_stock":  product.CurrentStock,
				"reorder_needed": product.ReorderNeeded,
			}).Error; err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}

		ledger := &entity.InventoryTransaction{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  req.Quantity,
			Reference: reference,
			CreatedBy: actor.ID,
		}
		if err := tx.Create(ledger).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}
