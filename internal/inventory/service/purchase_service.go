package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseService owns the purchase order lifecycle: creation, approval,
// receiving and the deletion guard.
type PurchaseService struct {
	purchaseRepo *repository.PurchaseRepository
	supplierRepo *repository.SupplierRepository
	productRepo  *repository.ProductRepository
	db           *gorm.DB
}

func NewPurchaseService(pr *repository.PurchaseRepository, sr *repository.SupplierRepository, pdr *repository.ProductRepository, db *gorm.DB) *PurchaseService {
	return &PurchaseService{purchaseRepo: pr, supplierRepo: sr, productRepo: pdr, db: db}
}

// --- Creation ---

type CreatePORequest struct {
	SupplierID string         `json:"supplier_id" binding:"required"`
	Items      []CreatePOItem `json:"items" binding:"required,min=1,dive"`
}

type CreatePOItem struct {
	ProductID       string `json:"product_id" binding:"required"`
	OrderedQuantity int    `json:"ordered_quantity" binding:"required,gt=0"`
}

func (s *PurchaseService) Create(req CreatePORequest, actor Actor) (*entity.PurchaseOrder, error) {
	if _, err := s.supplierRepo.GetByID(req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", ErrNotFound, req.SupplierID)
		}
		return nil, err
	}

	po := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: req.SupplierID,
		Status:     entity.POStatusPending,
		CreatedBy:  actor.ID,
	}

	var items []entity.PurchaseOrderItem
	for _, item := range req.Items {
		if item.OrderedQuantity <= 0 {
			return nil, fmt.Errorf("%w: ordered quantity must be positive", ErrInvalidArgument)
		}
		if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, item.ProductID)
			}
			return nil, err
		}
		items = append(items, entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: po.ID,
			ProductID:       item.ProductID,
			OrderedQuantity: item.OrderedQuantity,
		})
	}
	po.Items = items

	if err := s.purchaseRepo.CreatePO(po); err != nil {
		return nil, fmt.Errorf("failed to create PO: %w", err)
	}
	return po, nil
}

// --- Reads ---

func (s *PurchaseService) Get(id string) (*entity.PurchaseOrder, error) {
	po, err := s.purchaseRepo.GetPOByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase order %s", ErrNotFound, id)
		}
		return nil, err
	}
	if po.Supplier != nil {
		po.SupplierName = po.Supplier.Name
	}
	return po, nil
}

func (s *PurchaseService) List(params repository.POListParams) ([]entity.PurchaseOrder, int64, error) {
	pos, total, err := s.purchaseRepo.ListPOs(params)
	if err != nil {
		return nil, 0, err
	}
	for i := range pos {
		if pos[i].Supplier != nil {
			pos[i].SupplierName = pos[i].Supplier.Name
		}
	}
	return pos, total, nil
}

// --- Approval ---

// Approve moves a Pending order to Approved. The role check runs before the
// state check so a non-manager always sees Forbidden.
func (s *PurchaseService) Approve(ctx context.Context, id string, actor Actor) (*entity.PurchaseOrder, error) {
	if !actor.HasRole(RoleManager) {
		return nil, fmt.Errorf("%w: only managers can approve purchase orders", ErrForbidden)
	}

	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if po.Status != entity.POStatusPending {
		return nil, fmt.Errorf("%w: only Pending purchase orders can be approved", ErrInvalidState)
	}

	now := time.Now()
	po.Status = entity.POStatusApproved
	po.ApprovedBy = actor.ID
	po.ApprovedAt = &now

	res := s.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("id = ? AND status = ?", id, entity.POStatusPending).
		Updates(map[string]interface{}{
			"status":      entity.POStatusApproved,
			"approved_by": actor.ID,
			"approved_at": &now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to approve PO: %w", res.Error)
	}
	// A concurrent approval may have won the race after our status read.
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: only Pending purchase orders can be approved", ErrInvalidState)
	}
	return po, nil
}

// --- Receiving ---

type ReceiveItemInput struct {
	ItemID           string `json:"id" binding:"required"`
	ReceivedQuantity int    `json:"received_quantity" binding:"required,gt=0"`
}

// Receive applies a delivery against an Approved or Partially Delivered
// order. The whole call is one transaction: entries are validated in input
// order and the first violation rolls back every mutation already applied.
// The order row, its items and each touched product are locked FOR UPDATE so
// concurrent receives against the same order serialize.
func (s *PurchaseService) Receive(ctx context.Context, id string, entries []ReceiveItemInput, actor Actor) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: at least one receipt entry is required", ErrInvalidArgument)
	}

	var finalStatus string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var po entity.PurchaseOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&po).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: purchase order %s", ErrNotFound, id)
			}
			return err
		}
		if !po.Receivable() {
			return fmt.Errorf("%w: cannot receive goods for a %s purchase order", ErrInvalidState, po.Status)
		}

		var items []entity.PurchaseOrderItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("purchase_order_id = ?", po.ID).
			Order("created_at ASC").Find(&items).Error; err != nil {
			return err
		}

		byID := make(map[string]*entity.PurchaseOrderItem, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}

		for _, entry := range entries {
			item, ok := byID[entry.ItemID]
			if !ok {
				return fmt.Errorf("%w: item %s not found in this purchase order", ErrNotFound, entry.ItemID)
			}
			if entry.ReceivedQuantity <= 0 {
				return fmt.Errorf("%w: received quantity must be positive", ErrInvalidArgument)
			}
			remaining := item.Remaining()
			if entry.ReceivedQuantity > remaining {
				return fmt.Errorf("%w: cannot receive more than remaining quantity (%d)", ErrInvalidArgument, remaining)
			}

			item.ReceivedQuantity += entry.ReceivedQuantity
			if err := tx.Model(&entity.PurchaseOrderItem{}).
				Where("id = ?", item.ID).
				Update("received_quantity", item.ReceivedQuantity).Error; err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}

			var product entity.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", item.ProductID).First(&product).Error; err != nil {
				return fmt.Errorf("failed to load product %s: %w", item.ProductID, err)
			}
			product.CurrentStock += entry.ReceivedQuantity
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
				Quantity:  entry.ReceivedQuantity,
				Reference: fmt.Sprintf("PO #%s Receipt", po.ID),
				CreatedBy: actor.ID,
			}
			if err := tx.Create(ledger).Error; err != nil {
				return fmt.Errorf("failed to append ledger entry: %w", err)
			}
		}

		allReceived := true
		for i := range items {
			if items[i].ReceivedQuantity < items[i].OrderedQuantity {
				allReceived = false
				break
			}
		}
		if allReceived {
			po.Status = entity.POStatusCompleted
		} else {
			po.Status = entity.POStatusPartial
		}
		if err := tx.Model(&entity.PurchaseOrder{}).
			Where("id = ?", po.ID).
			Update("status", po.Status).Error; err != nil {
			return fmt.Errorf("failed to update PO status: %w", err)
		}

		finalStatus = po.Status
		return nil
	})
	if err != nil {
		return "", err
	}
	return finalStatus, nil
}

// --- Deletion guard ---

// Delete removes a purchase order and its items. Only Pending orders can be
// deleted; no ledger entries exist yet at that point.
func (s *PurchaseService) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var po entity.PurchaseOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&po).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: purchase order %s", ErrNotFound, id)
			}
			return err
		}
		if po.Status != entity.POStatusPending {
			return fmt.Errorf("%w: only Pending purchase orders can be deleted", ErrInvalidState)
		}
		if err := tx.Where("purchase_order_id = ?", po.ID).
			Delete(&entity.PurchaseOrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		if err := tx.Delete(&po).Error; err != nil {
			return fmt.Errorf("failed to delete PO: %w", err)
		}
		return nil
	})
}
