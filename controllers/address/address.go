package addressControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/middleware"
	"github.com/harshilv17/Zivara/models"
)

type AddressInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// GET /api/addresses — default address first.
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		err := db.Where("user_id = ?", middleware.UserID(c)).
			Order("is_default desc").
			Find(&addresses).Error
		if err != nil {
			log.Error().Err(err).Msg("addresses: list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/addresses — creating a default unsets the others in the same
// transaction, keeping at most one default per user.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		userID := middleware.UserID(c)

		address := models.Address{
			UserID:    userID,
			Name:      input.Name,
			Phone:     input.Phone,
			Address:   input.Address,
			City:      input.City,
			Pincode:   input.Pincode,
			IsDefault: input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.Address{}).
					Where("user_id = ?", userID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("addresses: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// PUT /api/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}
		userID := middleware.UserID(c)

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			} else {
				log.Error().Err(err).Msg("addresses: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			}
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.Address{}).
					Where("user_id = ? AND id != ?", userID, address.ID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Model(&address).Updates(map[string]interface{}{
				"name":       input.Name,
				"phone":      input.Phone,
				"address":    input.Address,
				"city":       input.City,
				"pincode":    input.Pincode,
				"is_default": input.IsDefault,
			}).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("addresses: update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /api/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
			Delete(&models.Address{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("addresses: delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}

// PATCH /api/addresses/:id/default
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}
		userID := middleware.UserID(c)

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			} else {
				log.Error().Err(err).Msg("addresses: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default address"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			return tx.Model(&address).Update("is_default", true).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("addresses: set default failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}
