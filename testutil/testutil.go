// Package testutil wires a real router against an in-memory database so
// handler tests exercise the same paths production traffic takes.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	"github.com/harshilv17/Zivara/models"
	"github.com/harshilv17/Zivara/routes"
)

const JWTSecret = "test-secret"

// Config returns a test configuration with the payment gateway in test mode.
func Config() config.Config {
	return config.Config{
		Port:              "0",
		JWTSecret:         JWTSecret,
		RazorpayKeySecret: "test-key-secret",
		PaymentTestMode:   true,
	}
}

// OpenDB opens a fresh in-memory database with the full schema migrated.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	)
	require.NoError(t, err)

	return db
}

// NewServer builds a router over a fresh database using the default test config.
func NewServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db, r, _ := NewServerWithConfig(t, nil)
	return db, r
}

// NewServerWithConfig lets a test tweak the config before the routes are wired.
func NewServerWithConfig(t *testing.T, mutate func(*config.Config)) (*gorm.DB, *gin.Engine, config.Config) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	cfg := Config()
	if mutate != nil {
		mutate(&cfg)
	}

	db := OpenDB(t)
	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return db, r, cfg
}

// CreateUser inserts a user (password "password123") with an empty cart.
func CreateUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID}).Error)
	return user
}

// Token signs a session token the same way the auth controller does.
func Token(t *testing.T, user models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(JWTSecret))
	require.NoError(t, err)
	return token
}

// Do performs a JSON request against the router. An empty token skips the
// Authorization header.
func Do(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body into out.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
