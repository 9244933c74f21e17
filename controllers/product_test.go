// controllers/product_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	r := newTestRouter()
	NewProductResource(db, &fakeStore{}).Register(r.Group("/api/products"), passGuard)
	return r, db
}

func TestProductCreateWithoutPrice(t *testing.T) {
	r, _ := setupProductRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"name":        "Pomada modeladora",
		"description": "Fixação forte",
	})
	expectStatus(t, recorder, http.StatusCreated)

	created := decodeObject(t, recorder)
	if created["price"] != nil {
		t.Errorf("price = %v, want null", created["price"])
	}
}

func TestProductListFiltersInactiveByDefault(t *testing.T) {
	r, _ := setupProductRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"name":  "Shampoo",
		"price": 19.9,
	})
	expectStatus(t, recorder, http.StatusCreated)

	recorder = doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"name":   "Cera capilar",
		"price":  29.9,
		"active": false,
	})
	expectStatus(t, recorder, http.StatusCreated)

	// Public shop page: only active products
	recorder = doRequest(t, r, http.MethodGet, "/api/products", nil)
	expectStatus(t, recorder, http.StatusOK)
	visible := decodeList(t, recorder)
	if len(visible) != 1 {
		t.Fatalf("visible products = %d, want 1", len(visible))
	}
	if visible[0]["name"] != "Shampoo" {
		t.Errorf("visible product = %v, want Shampoo", visible[0]["name"])
	}
	if visible[0]["price"] != 19.9 {
		t.Errorf("price = %v, want 19.9", visible[0]["price"])
	}

	// Dashboard: everything
	recorder = doRequest(t, r, http.MethodGet, "/api/products?showAll=true", nil)
	expectStatus(t, recorder, http.StatusOK)
	if all := decodeList(t, recorder); len(all) != 2 {
		t.Fatalf("all products = %d, want 2", len(all))
	}
}

func TestProductCreateMissingName(t *testing.T) {
	r, _ := setupProductRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"description": "sem nome",
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}
