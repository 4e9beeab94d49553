package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stocked item that can be ordered from suppliers.
type Product struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name             string          `json:"name" gorm:"size:255;not null"`
	Description      string          `json:"description" gorm:"type:text"`
	SKU              string          `json:"sku" gorm:"column:sku;size:50;not null;uniqueIndex"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CurrentStock     int             `json:"current_stock" gorm:"not null;default:0"`
	ReorderThreshold int             `json:"reorder_threshold" gorm:"not null;default:5"`
	ReorderNeeded    bool            `json:"reorder_needed" gorm:"not null;default:false"`
	CreatedBy        string          `json:"created_by" gorm:"size:64"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        *time.Time      `json:"deleted_at" gorm:"index"`
}

func (Product) TableName() string {
	return "inv_products"
}

// RecomputeReorder derives the reorder flag from the current stock level.
// Must be called after every stock mutation.
func (p *Product) RecomputeReorder() {
	p.ReorderNeeded = p.CurrentStock < p.ReorderThreshold
}
