package orderControllers

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

type CreateOrderInput struct {
	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingPincode string `json:"shipping_pincode"`
	PaymentMethod   string `json:"payment_method"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

var errCartEmpty = errors.New("cart is empty")

// placeOrder materializes the cart into an order. The order, its item
// snapshots and the cart clear happen in one transaction; a failure in any
// step rolls back the rest.
func placeOrder(db *gorm.DB, userID uint, input CreateOrderInput) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCartEmpty
			}
			return err
		}
		if len(cart.Items) == 0 {
			return errCartEmpty
		}

		var total float64
		var items []models.OrderItem
		for _, item := range cart.Items {
			total += item.Product.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price, // frozen at checkout
			})
		}

		order = models.Order{
			UserID:          userID,
			Items:           items,
			Total:           total,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   input.PaymentMethod,
			ShippingName:    input.ShippingName,
			ShippingPhone:   input.ShippingPhone,
			ShippingAddress: input.ShippingAddress,
			ShippingCity:    input.ShippingCity,
			ShippingPincode: input.ShippingPincode,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})

	return order, err
}

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PaymentMethod == "" {
			input.PaymentMethod = "UPI"
		}

		order, err := placeOrder(db, middleware.UserID(c), input)
		if err != nil {
			if errors.Is(err, errCartEmpty) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			log.Error().Err(err).Msg("orders: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		if err := db.Preload("Items.Product").First(&order, order.ID).Error; err != nil {
			log.Error().Err(err).Msg("orders: reload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.Preload("Items.Product").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at desc").
			Find(&orders).Error
		if err != nil {
			log.Error().Err(err).Msg("orders: list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id — owner-scoped.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		err = db.Preload("Items.Product").
			Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				log.Error().Err(err).Msg("orders: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/orders/:id/payment — COMPLETED also advances the order to
// PROCESSING; there is no downgrade path.
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input UpdatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment status is required"})
			return
		}

		var order models.Order
		err = db.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				log.Error().Err(err).Msg("orders: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			}
			return
		}

		updates := map[string]interface{}{"payment_status": input.PaymentStatus}
		if input.PaymentStatus == models.PaymentStatusCompleted {
			updates["status"] = models.OrderStatusProcessing
		}
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			log.Error().Err(err).Msg("orders: payment status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/admin/all
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.Preload("Items.Product").
			Preload("User").
			Order("created_at desc").
			Find(&orders).Error
		if err != nil {
			log.Error().Err(err).Msg("orders: admin list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /api/orders/admin/:id/status — status is admin-settable freely.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				log.Error().Err(err).Msg("orders: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			}
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatus(input.Status)).Error; err != nil {
			log.Error().Err(err).Msg("orders: status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
