package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/testutil"
)

func setupSupplierTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/suppliers", handlers.Supplier.List)
	api.POST("/suppliers", handlers.Supplier.Create)
	api.GET("/suppliers/:id", handlers.Supplier.Get)
	api.PUT("/suppliers/:id", handlers.Supplier.Update)
	api.DELETE("/suppliers/:id", handlers.Supplier.Delete)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestSupplierLifecycle(t *testing.T) {
	env := setupSupplierTest(t)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/suppliers", map[string]interface{}{
		"name":          "Northwind Traders",
		"contact_email": "orders@northwind.test",
		"phone":         "555-0100",
	}, testutil.ClerkToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := data["id"].(string)

	// Missing email fails binding
	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/suppliers", map[string]interface{}{
		"name": "No Email Ltd",
	}, testutil.ClerkToken())
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without email, got %d: %s", w2.Code, w2.Body.String())
	}

	// Partial update keeps untouched fields
	w3 := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/suppliers/"+id, map[string]interface{}{
		"phone": "555-0199",
	}, testutil.ClerkToken())
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	updated := testutil.ParseResponse(w3)["data"].(map[string]interface{})
	if updated["phone"] != "555-0199" || updated["name"] != "Northwind Traders" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	// Keyword search
	w4 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/suppliers?keyword=northwind", nil, testutil.ClerkToken())
	items := testutil.ParseResponse(w4)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(items))
	}

	// Soft delete hides the supplier from reads but keeps the row
	w5 := testutil.DoRequest(env.Router, http.MethodDelete, "/api/v1/suppliers/"+id, nil, testutil.ClerkToken())
	if w5.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w5.Code, w5.Body.String())
	}
	w6 := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/suppliers/"+id, nil, testutil.ClerkToken())
	if w6.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", w6.Code, w6.Body.String())
	}

	var row entity.Supplier
	if err := env.DB.Where("id = ?", id).First(&row).Error; err != nil {
		t.Fatalf("expected soft-deleted row to remain: %v", err)
	}
	if row.DeletedAt == nil {
		t.Fatal("expected deleted_at to be set")
	}
}

func TestGetSupplierNotFound(t *testing.T) {
	env := setupSupplierTest(t)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/suppliers/00000000-0000-0000-0000-000000000000", nil, testutil.ClerkToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
