package repository

import "gorm.io/gorm"

// Repositories bundles every inventory repository.
type Repositories struct {
	Supplier *SupplierRepository
	Product  *ProductRepository
	Purchase *PurchaseRepository
	Ledger   *LedgerRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier: NewSupplierRepository(db),
		Product:  NewProductRepository(db),
		Purchase: NewPurchaseRepository(db),
		Ledger:   NewLedgerRepository(db),
	}
}
