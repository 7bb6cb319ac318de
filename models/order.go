package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // placed, awaiting payment
	OrderStatusProcessing OrderStatus = "PROCESSING" // paid, being prepared
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"

	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"index;not null" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"`

	// Shipping snapshot taken at checkout.
	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingPincode string `json:"shipping_pincode"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem freezes the product price at the moment of purchase; later price
// changes on the product must not affect past orders.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
