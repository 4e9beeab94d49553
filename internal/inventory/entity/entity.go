package entity

import "gorm.io/gorm"

// AutoMigrate migrates all inventory tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&Supplier{},
		&Product{},

		// Purchasing
		&PurchaseOrder{},
		&PurchaseOrderItem{},

		// Ledger
		&InventoryTransaction{},
	)
}
