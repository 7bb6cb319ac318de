package authControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	"github.com/harshilv17/Zivara/middleware"
	"github.com/harshilv17/Zivara/models"
)

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IssueToken signs a 7-day session token carrying the user's id and role.
func IssueToken(cfg config.Config, user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// POST /api/auth/signup
func Signup(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("signup: lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("signup: hashing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		user := models.User{
			Email:    input.Email,
			Password: string(hash),
			Name:     input.Name,
			Role:     models.RoleCustomer,
		}

		// User and their empty cart are created together.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&models.Cart{UserID: user.ID}).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("signup: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		token, err := IssueToken(cfg, user)
		if err != nil {
			log.Error().Err(err).Msg("signup: token signing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user.Public(), "token": token})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		// Same message for unknown email and bad password.
		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := IssueToken(cfg, user)
		if err != nil {
			log.Error().Err(err).Msg("login: token signing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user.Public(), "token": token})
	}
}

// GET /api/auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

type ProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// PATCH /api/auth/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		updates := map[string]interface{}{
			"name":    input.Name,
			"phone":   input.Phone,
			"address": input.Address,
			"city":    input.City,
			"pincode": input.Pincode,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			log.Error().Err(err).Msg("profile: update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, user.Public())
	}
}
