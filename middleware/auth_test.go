package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshilv17/Zivara/middleware"
	"github.com/harshilv17/Zivara/models"
)

const secret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.RequireAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.UserID(c)})
	})
	r.GET("/admin", middleware.RequireAuth(secret), middleware.RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signedToken(t *testing.T, key string, userID uint, role models.Role, exp time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(exp).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func do(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", signedToken(t, secret, 1, models.RoleCustomer, time.Hour)},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signedToken(t, "other-secret", 1, models.RoleCustomer, time.Hour)},
		{"expired", "Bearer " + signedToken(t, secret, 1, models.RoleCustomer, -time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/me", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAuthSetsUserID(t *testing.T) {
	r := newRouter()

	w := do(r, "/me", "Bearer "+signedToken(t, secret, 42, models.RoleCustomer, time.Hour))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter()

	w := do(r, "/admin", "Bearer "+signedToken(t, secret, 1, models.RoleCustomer, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin only")

	w = do(r, "/admin", "Bearer "+signedToken(t, secret, 1, models.RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}
