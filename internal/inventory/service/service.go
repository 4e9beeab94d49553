package service

import (
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"gorm.io/gorm"
)

// Services bundles every inventory service.
type Services struct {
	Supplier  *SupplierService
	Product   *ProductService
	Purchase  *PurchaseService
	Inventory *InventoryService
}

func NewServices(repos *repository.Repositories, db *gorm.DB) *Services {
	return &Services{
		Supplier:  NewSupplierService(repos.Supplier),
		Product:   NewProductService(repos.Product),
		Purchase:  NewPurchaseService(repos.Purchase, repos.Supplier, repos.Product, db),
		Inventory: NewInventoryService(repos.Ledger, db),
	}
}
