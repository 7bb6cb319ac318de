package productcontroller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/models"
	"github.com/harshilv17/Zivara/testutil"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{Name: "SWING Matcha", Description: "Green sling bag", Price: 2499, Category: "sling", InStock: true},
		{Name: "SWING Terra", Description: "Brown sling bag", Price: 2899, Category: "sling", InStock: true},
		{Name: "CARRYALL Tote", Description: "Everyday tote", Price: 3499, Category: "tote", InStock: true},
	}
	require.NoError(t, db.Create(&products).Error)
}

func TestGetProductsFilters(t *testing.T) {
	db, r := testutil.NewServer(t)
	seedCatalog(t, db)

	get := func(path string) []models.Product {
		w := testutil.Do(t, r, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var products []models.Product
		testutil.Decode(t, w, &products)
		return products
	}

	// case-insensitive search over name and description
	assert.Len(t, get("/api/products?search=swing"), 2)
	assert.Len(t, get("/api/products?search=TOTE"), 1)

	// category filter; "all" is a no-op
	assert.Len(t, get("/api/products?category=sling"), 2)
	assert.Len(t, get("/api/products?category=all"), 3)

	// price range
	assert.Len(t, get("/api/products?min_price=2500&max_price=3000"), 1)

	// sort
	byPrice := get("/api/products?sort=price_asc")
	require.Len(t, byPrice, 3)
	assert.Equal(t, "SWING Matcha", byPrice[0].Name)
	assert.Equal(t, "CARRYALL Tote", byPrice[2].Name)

	byName := get("/api/products?sort=name_asc")
	assert.Equal(t, "CARRYALL Tote", byName[0].Name)
}

func TestProductCreatedOutOfStockStaysOut(t *testing.T) {
	db, _ := testutil.NewServer(t)

	// InStock must survive a Create unchanged; a column default would make
	// gorm skip the zero value and persist the product as in stock.
	p := models.Product{Name: "SWING Ash", Price: 2199, Category: "sling", InStock: false}
	require.NoError(t, db.Create(&p).Error)

	var saved models.Product
	require.NoError(t, db.First(&saved, p.ID).Error)
	assert.False(t, saved.InStock)
}

func TestGetProductsInvalidPrice(t *testing.T) {
	_, r := testutil.NewServer(t)

	w := testutil.Do(t, r, http.MethodGet, "/api/products?min_price=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid min_price")
}

func TestGetProductByID(t *testing.T) {
	db, r := testutil.NewServer(t)
	seedCatalog(t, db)

	var p models.Product
	require.NoError(t, db.Where("name = ?", "SWING Matcha").First(&p).Error)

	w := testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/products/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories(t *testing.T) {
	db, r := testutil.NewServer(t)
	seedCatalog(t, db)

	w := testutil.Do(t, r, http.MethodGet, "/api/products/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	testutil.Decode(t, w, &categories)
	assert.ElementsMatch(t, []string{"sling", "tote"}, categories)
}

func TestProductWritesRequireAdmin(t *testing.T) {
	db, r := testutil.NewServer(t)
	customer := testutil.CreateUser(t, db, "customer@example.com", models.RoleCustomer)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)

	body := map[string]interface{}{"name": "SWING Onyx", "price": 2699, "category": "sling"}

	w := testutil.Do(t, r, http.MethodPost, "/api/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/products", body, testutil.Token(t, customer))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/products", body, testutil.Token(t, admin))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	db, r := testutil.NewServer(t)
	seedCatalog(t, db)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)

	var p models.Product
	require.NoError(t, db.Where("name = ?", "SWING Terra").First(&p).Error)

	w := testutil.Do(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", p.ID), map[string]interface{}{
		"name":     "SWING Terra",
		"price":    1999,
		"category": "sling",
		"in_stock": false,
	}, testutil.Token(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Product
	require.NoError(t, db.First(&saved, p.ID).Error)
	assert.Equal(t, 1999.0, saved.Price)
	assert.False(t, saved.InStock)
	assert.Equal(t, "SWING Terra", saved.Name)
}

func TestDeleteProduct(t *testing.T) {
	db, r := testutil.NewServer(t)
	seedCatalog(t, db)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)
	token := testutil.Token(t, admin)

	var p models.Product
	require.NoError(t, db.Where("name = ?", "CARRYALL Tote").First(&p).Error)

	w := testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeedProductsReplacesCatalog(t *testing.T) {
	db, r := testutil.NewServer(t)
	seedCatalog(t, db)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)

	w := testutil.Do(t, r, http.MethodPost, "/api/products/seed", nil, testutil.Token(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 8, count)
}
