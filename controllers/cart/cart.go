package cartControllers

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

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// getOrCreateCart fetches the user's cart, creating it lazily on first access.
func getOrCreateCart(db *gorm.DB, userID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// loadCart reloads a cart with its items and product details joined in.
func loadCart(db *gorm.DB, cartID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").First(&cart, cartID).Error
	return cart, err
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := getOrCreateCart(db, middleware.UserID(c))
		if err != nil {
			log.Error().Err(err).Msg("cart: fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
			return
		}

		cart, err = loadCart(db, cart.ID)
		if err != nil {
			log.Error().Err(err).Msg("cart: load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /api/cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				log.Error().Err(err).Msg("cart: product lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			}
			return
		}

		cart, err := getOrCreateCart(db, middleware.UserID(c))
		if err != nil {
			log.Error().Err(err).Msg("cart: fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		// Same product twice merges into one line.
		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cart.ID, ProductID: input.ProductID, Quantity: input.Quantity}
			err = db.Create(&item).Error
		case err == nil:
			item.Quantity += input.Quantity
			err = db.Save(&item).Error
		}
		if err != nil {
			log.Error().Err(err).Msg("cart: add failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}

		cart, err = loadCart(db, cart.ID)
		if err != nil {
			log.Error().Err(err).Msg("cart: load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PATCH /api/cart/item/:itemId — quantity <= 0 removes the line.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("itemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity is required"})
			return
		}

		cart, err := getOrCreateCart(db, middleware.UserID(c))
		if err != nil {
			log.Error().Err(err).Msg("cart: fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				log.Error().Err(err).Msg("cart: item lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}

		if *input.Quantity <= 0 {
			err = db.Delete(&item).Error
		} else {
			item.Quantity = *input.Quantity
			err = db.Save(&item).Error
		}
		if err != nil {
			log.Error().Err(err).Msg("cart: update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		cart, err = loadCart(db, cart.ID)
		if err != nil {
			log.Error().Err(err).Msg("cart: load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/item/:itemId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("itemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		cart, err := getOrCreateCart(db, middleware.UserID(c))
		if err != nil {
			log.Error().Err(err).Msg("cart: fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
			return
		}

		result := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("cart: remove failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		cart, err = loadCart(db, cart.ID)
		if err != nil {
			log.Error().Err(err).Msg("cart: load failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := getOrCreateCart(db, middleware.UserID(c))
		if err != nil {
			log.Error().Err(err).Msg("cart: fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			log.Error().Err(err).Msg("cart: clear failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
