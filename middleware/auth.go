package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/harshilv17/Zivara/models"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// RequireAuth validates the bearer token and puts the caller's id and role
// into the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)

		c.Set(CtxUserID, uint(userID))
		c.Set(CtxRole, role)

		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin(c *gin.Context) {
	if c.GetString(CtxRole) != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin only."})
		c.Abort()
		return
	}
	c.Next()
}

// UserID returns the authenticated caller's id from the context.
func UserID(c *gin.Context) uint {
	return c.GetUint(CtxUserID)
}
