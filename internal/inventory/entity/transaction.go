package entity

import (
	"time"
)

// InventoryTransaction is one append-only ledger row per stock-affecting
// event. Rows are never updated or deleted.
type InventoryTransaction struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID string    `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"` // positive = in, negative = out
	Reference string    `json:"reference" gorm:"size:255;not null"`
	CreatedBy string    `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (InventoryTransaction) TableName() string {
	return "inv_inventory_transactions"
}
