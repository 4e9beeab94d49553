package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/testutil"
	"github.com/bitfantasy/nimo-inventory/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func setupInventoryTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/inventory/transactions", handlers.Inventory.Transactions)
	api.POST("/inventory/adjust", middleware.RequireRole(service.RoleManager), handlers.Inventory.Adjust)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func seedProduct(t *testing.T, env *testutil.TestEnv, stock, threshold int) entity.Product {
	t.Helper()
	p := entity.Product{
		ID:               uuid.New().String(),
		Name:             "Bolt M8",
		SKU:              "BOLT-" + uuid.New().String()[:8],
		Price:            decimal.NewFromFloat(0.35),
		CurrentStock:     stock,
		ReorderThreshold: threshold,
		CreatedBy:        "test-seed",
	}
	p.RecomputeReorder()
	if err := env.DB.Create(&p).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return p
}

func TestAdjustStock(t *testing.T) {
	env := setupInventoryTest(t)
	product := seedProduct(t, env, 0, 5)

	// Positive adjustment lifts stock above the threshold
	body := map[string]interface{}{"product_id": product.ID, "quantity": 7}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/adjust", body, testutil.ManagerToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got entity.Product
	env.DB.Where("id = ?", product.ID).First(&got)
	if got.CurrentStock != 7 {
		t.Fatalf("expected stock 7, got %d", got.CurrentStock)
	}
	if got.ReorderNeeded {
		t.Fatal("expected reorder_needed false at stock 7")
	}

	var ledger []entity.InventoryTransaction
	env.DB.Where("product_id = ?", product.ID).Find(&ledger)
	if len(ledger) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(ledger))
	}
	if ledger[0].Quantity != 7 || ledger[0].Reference != "Manual Adjustment" {
		t.Fatalf("unexpected ledger entry: %+v", ledger[0])
	}
	if ledger[0].CreatedBy != "test-manager-001" {
		t.Fatalf("expected created_by from token, got %s", ledger[0].CreatedBy)
	}

	// Negative adjustment back to zero re-raises the flag
	body = map[string]interface{}{"product_id": product.ID, "quantity": -7, "reference": "Cycle count"}
	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/adjust", body, testutil.ManagerToken())
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	env.DB.Where("id = ?", product.ID).First(&got)
	if got.CurrentStock != 0 {
		t.Fatalf("expected stock 0, got %d", got.CurrentStock)
	}
	if !got.ReorderNeeded {
		t.Fatal("expected reorder_needed true at stock 0")
	}

	env.DB.Where("product_id = ?", product.ID).Order("created_at ASC").Find(&ledger)
	if len(ledger) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(ledger))
	}
	if ledger[1].Quantity != -7 || ledger[1].Reference != "Cycle count" {
		t.Fatalf("unexpected ledger entry: %+v", ledger[1])
	}
}

func TestAdjustRejectsNegativeStock(t *testing.T) {
	env := setupInventoryTest(t)
	product := seedProduct(t, env, 3, 5)

	body := map[string]interface{}{"product_id": product.ID, "quantity": -4}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/adjust", body, testutil.ManagerToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var got entity.Product
	env.DB.Where("id = ?", product.ID).First(&got)
	if got.CurrentStock != 3 {
		t.Fatalf("expected stock unchanged at 3, got %d", got.CurrentStock)
	}

	var ledgerCount int64
	env.DB.Model(&entity.InventoryTransaction{}).Count(&ledgerCount)
	if ledgerCount != 0 {
		t.Fatalf("expected no ledger entries, got %d", ledgerCount)
	}
}

func TestAdjustRequiresManager(t *testing.T) {
	env := setupInventoryTest(t)
	product := seedProduct(t, env, 0, 5)

	body := map[string]interface{}{"product_id": product.ID, "quantity": 1}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/adjust", body, testutil.ClerkToken())
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for clerk, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdjustUnknownProduct(t *testing.T) {
	env := setupInventoryTest(t)

	body := map[string]interface{}{"product_id": uuid.New().String(), "quantity": 1}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/adjust", body, testutil.ManagerToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListTransactionsFilter(t *testing.T) {
	env := setupInventoryTest(t)
	first := seedProduct(t, env, 0, 5)
	second := seedProduct(t, env, 0, 5)

	for _, p := range []entity.Product{first, second} {
		body := map[string]interface{}{"product_id": p.ID, "quantity": 10}
		w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/adjust", body, testutil.ManagerToken())
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 adjusting, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/inventory/transactions", nil, testutil.ClerkToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(items))
	}

	w2 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/inventory/transactions?product_id="+first.ID, nil, testutil.ClerkToken())
	resp2 := testutil.ParseResponse(w2)
	items2 := resp2["data"].(map[string]interface{})["items"].([]interface{})
	if len(items2) != 1 {
		t.Fatalf("expected 1 transaction for product filter, got %d", len(items2))
	}
	if pid := items2[0].(map[string]interface{})["product_id"]; pid != first.ID {
		t.Fatalf("expected transaction for %s, got %v", first.ID, pid)
	}
}
