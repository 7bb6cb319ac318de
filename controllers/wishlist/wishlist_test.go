package wishlistControllers_test

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

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: 1999, Category: "sling", InStock: true}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestAddAndListWishlist(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "alice@example.com", models.RoleCustomer)
	token := testutil.Token(t, user)
	product := seedProduct(t, db, "SWING Matcha")

	w := testutil.Do(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{"product_id": product.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/wishlist", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.WishlistItem
	testutil.Decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, "SWING Matcha", items[0].Product.Name)
}

func TestAddDuplicateToWishlist(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "alice@example.com", models.RoleCustomer)
	token := testutil.Token(t, user)
	product := seedProduct(t, db, "SWING Terra")
	body := map[string]interface{}{"product_id": product.ID}

	w := testutil.Do(t, r, http.MethodPost, "/api/wishlist", body, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/wishlist", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Already in wishlist")
}

func TestAddUnknownProductToWishlist(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "alice@example.com", models.RoleCustomer)

	w := testutil.Do(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{"product_id": 9999}, testutil.Token(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromWishlist(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "alice@example.com", models.RoleCustomer)
	token := testutil.Token(t, user)
	product := seedProduct(t, db, "SWING Onyx")

	require.NoError(t, db.Create(&models.WishlistItem{UserID: user.ID, ProductID: product.ID}).Error)
	path := fmt.Sprintf("/api/wishlist/%d", product.ID)

	w := testutil.Do(t, r, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// a second remove finds nothing
	w = testutil.Do(t, r, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not in wishlist")
}

func TestCheckWishlist(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "alice@example.com", models.RoleCustomer)
	token := testutil.Token(t, user)
	product := seedProduct(t, db, "SWING Sage")

	w := testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/api/wishlist/check/%d", product.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_wishlist":false`)

	require.NoError(t, db.Create(&models.WishlistItem{UserID: user.ID, ProductID: product.ID}).Error)

	w = testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/api/wishlist/check/%d", product.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_wishlist":true`)
}
