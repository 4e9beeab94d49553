package entity

import (
	"time"
)

// PurchaseOrderStatus values. The strings are the wire values existing
// clients already use, including the embedded space.
const (
	POStatusPending   = "Pending"
	POStatusApproved  = "Approved"
	POStatusPartial   = "Partially Delivered"
	POStatusCompleted = "Completed"
)

// PurchaseOrder is an order for goods placed with a supplier. Status moves
// forward only: Pending -> Approved -> Partially Delivered -> Completed.
type PurchaseOrder struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SupplierID string     `json:"supplier_id" gorm:"type:uuid;not null;index"`
	Status     string     `json:"status" gorm:"size:20;not null;default:Pending"`
	CreatedBy  string     `json:"created_by" gorm:"size:64;not null"`
	ApprovedBy string     `json:"approved_by" gorm:"size:64"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Supplier *Supplier           `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Items    []PurchaseOrderItem `json:"items,omitempty" gorm:"foreignKey:PurchaseOrderID"`

	// SupplierName is denormalized into list payloads.
	SupplierName string `json:"supplier_name,omitempty" gorm:"-"`
}

func (PurchaseOrder) TableName() string {
	return "inv_purchase_orders"
}

// Receivable reports whether goods may be received against this order.
func (po *PurchaseOrder) Receivable() bool {
	return po.Status == POStatusApproved || po.Status == POStatusPartial
}

// PurchaseOrderItem is one product/quantity line within a purchase order.
// ReceivedQuantity never decreases and never exceeds OrderedQuantity.
type PurchaseOrderItem struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PurchaseOrderID  string    `json:"purchase_order_id" gorm:"type:uuid;not null;index"`
	ProductID        string    `json:"product_id" gorm:"type:uuid;not null;index"`
	OrderedQuantity  int       `json:"ordered_quantity" gorm:"not null"`
	ReceivedQuantity int       `json:"received_quantity" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (PurchaseOrderItem) TableName() string {
	return "inv_purchase_order_items"
}

// Remaining is the quantity still outstanding on this line.
func (i *PurchaseOrderItem) Remaining() int {
	return i.OrderedQuantity - i.ReceivedQuantity
}
