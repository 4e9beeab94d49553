package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/testutil"
)

func setupProductTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/products", handlers.Product.List)
	api.POST("/products", handlers.Product.Create)
	api.GET("/products/alerts", handlers.Product.Alerts)
	api.GET("/products/:id", handlers.Product.Get)
	api.PUT("/products/:id", handlers.Product.Update)
	api.DELETE("/products/:id", handlers.Product.Delete)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func createProduct(t *testing.T, env *testutil.TestEnv, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/products", body, testutil.ClerkToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 creating product, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func TestCreateProduct(t *testing.T) {
	env := setupProductTest(t)

	data := createProduct(t, env, map[string]interface{}{
		"name":          "Hex Nut",
		"sku":           "NUT-001",
		"price":         "0.12",
		"current_stock": 2,
	})
	if data["sku"] != "NUT-001" {
		t.Fatalf("expected sku NUT-001, got %v", data["sku"])
	}
	// Default threshold is 5 and 2 < 5
	if data["reorder_threshold"].(float64) != 5 {
		t.Fatalf("expected default threshold 5, got %v", data["reorder_threshold"])
	}
	if data["reorder_needed"] != true {
		t.Fatal("expected reorder_needed true at stock 2")
	}
	if data["created_by"] != "test-clerk-001" {
		t.Fatalf("expected created_by from token, got %v", data["created_by"])
	}

	// Duplicate SKU is rejected
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":  "Other Nut",
		"sku":   "NUT-001",
		"price": "0.15",
	}, testutil.ClerkToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate SKU, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductAlerts(t *testing.T) {
	env := setupProductTest(t)

	createProduct(t, env, map[string]interface{}{
		"name": "Low Stock", "sku": "LOW-001", "price": "1.00",
		"current_stock": 1, "reorder_threshold": 5,
	})
	createProduct(t, env, map[string]interface{}{
		"name": "Well Stocked", "sku": "OK-001", "price": "1.00",
		"current_stock": 50, "reorder_threshold": 5,
	})

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/products/alerts", nil, testutil.ClerkToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	alerts := testutil.ParseResponse(w)["data"].([]interface{})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if sku := alerts[0].(map[string]interface{})["sku"]; sku != "LOW-001" {
		t.Fatalf("expected LOW-001 flagged, got %v", sku)
	}
}

func TestUpdateProductRecomputesReorder(t *testing.T) {
	env := setupProductTest(t)

	data := createProduct(t, env, map[string]interface{}{
		"name": "Washer", "sku": "WAS-001", "price": "0.05",
		"current_stock": 10, "reorder_threshold": 5,
	})
	id := data["id"].(string)

	// Raising the threshold above current stock flips the flag
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/products/"+id, map[string]interface{}{
		"reorder_threshold": 20,
	}, testutil.ClerkToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got entity.Product
	env.DB.Where("id = ?", id).First(&got)
	if !got.ReorderNeeded {
		t.Fatal("expected reorder_needed true after threshold raise")
	}

	// Negative price is rejected
	w2 := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/products/"+id, map[string]interface{}{
		"price": "-1.00",
	}, testutil.ClerkToken())
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d: %s", w2.Code, w2.Body.String())
	}
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	env := setupProductTest(t)

	data := createProduct(t, env, map[string]interface{}{
		"name": "Gone Soon", "sku": "DEL-001", "price": "9.99",
	})
	id := data["id"].(string)

	w := testutil.DoRequest(env.Router, http.MethodDelete, "/api/v1/products/"+id, nil, testutil.ClerkToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Gone from the API
	w2 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/products/"+id, nil, testutil.ClerkToken())
	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", w2.Code, w2.Body.String())
	}

	// Row survives with deleted_at set
	var got entity.Product
	if err := env.DB.Where("id = ?", id).First(&got).Error; err != nil {
		t.Fatalf("expected soft-deleted row to remain: %v", err)
	}
	if got.DeletedAt == nil {
		t.Fatal("expected deleted_at to be set")
	}
}

func TestProductAuthRequired(t *testing.T) {
	env := setupProductTest(t)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/products", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", w.Code, w.Body.String())
	}
}
