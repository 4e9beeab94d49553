package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/config"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Generates dummy suppliers, products and purchase orders for local testing.
func main() {
	var (
		numSuppliers = flag.Int("suppliers", 10, "Number of suppliers to create")
		numProducts  = flag.Int("products", 50, "Number of products to create")
		numPOs       = flag.Int("pos", 30, "Number of purchase orders to create")
		force        = flag.Bool("force", false, "Seed even if data already exists")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := entity.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	var existing int64
	db.Model(&entity.Supplier{}).Count(&existing)
	if existing > 0 && !*force {
		log.Printf("Database already seeded (%d suppliers). Use -force to seed anyway.", existing)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	suppliers := make([]entity.Supplier, 0, *numSuppliers)
	for i := 0; i < *numSuppliers; i++ {
		s := entity.Supplier{
			ID:           uuid.New().String(),
			Name:         fmt.Sprintf("Supplier %d", i+1),
			ContactEmail: fmt.Sprintf("supplier%d@example.com", i+1),
			Phone:        fmt.Sprintf("999000%d", i+1),
			Address:      fmt.Sprintf("%d Market Road, City", i+1),
			CreatedBy:    "seed",
		}
		if err := db.Create(&s).Error; err != nil {
			log.Fatalf("Failed to create supplier: %v", err)
		}
		suppliers = append(suppliers, s)
	}
	log.Printf("Created %d suppliers", len(suppliers))

	products := make([]entity.Product, 0, *numProducts)
	for i := 0; i < *numProducts; i++ {
		stock := rng.Intn(201)
		threshold := 5 + rng.Intn(16)
		p := entity.Product{
			ID:               uuid.New().String(),
			Name:             fmt.Sprintf("Product %d", i+1),
			Description:      "Sample product description.",
			SKU:              fmt.Sprintf("P%04d", i+1),
			Price:            decimal.NewFromInt(int64(50 + rng.Intn(4951))).Add(decimal.NewFromFloat(0.99)),
			CurrentStock:     stock,
			ReorderThreshold: threshold,
			CreatedBy:        "seed",
		}
		p.RecomputeReorder()
		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("Failed to create product: %v", err)
		}
		products = append(products, p)
	}
	log.Printf("Created %d products", len(products))

	statuses := []string{entity.POStatusPending, entity.POStatusApproved}
	created := 0
	for i := 0; i < *numPOs; i++ {
		supplier := suppliers[rng.Intn(len(suppliers))]
		po := entity.PurchaseOrder{
			ID:         uuid.New().String(),
			SupplierID: supplier.ID,
			Status:     statuses[rng.Intn(len(statuses))],
			CreatedBy:  "seed",
		}
		if po.Status == entity.POStatusApproved {
			now := time.Now()
			po.ApprovedBy = "seed"
			po.ApprovedAt = &now
		}

		numItems := 1 + rng.Intn(5)
		for j := 0; j < numItems; j++ {
			product := products[rng.Intn(len(products))]
			po.Items = append(po.Items, entity.PurchaseOrderItem{
				ID:              uuid.New().String(),
				PurchaseOrderID: po.ID,
				ProductID:       product.ID,
				OrderedQuantity: 1 + rng.Intn(50),
			})
		}
		if err := db.Create(&po).Error; err != nil {
			log.Fatalf("Failed to create purchase order: %v", err)
		}
		created++
	}
	log.Printf("Created %d purchase orders", created)
	log.Println("Seeding complete")
}
