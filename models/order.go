package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for dispatch
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order is an immutable snapshot of a completed checkout. TotalAmount and the
// per-item prices are frozen at creation time and never recomputed.
type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderNumber     string        `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          string        `gorm:"not null;index" json:"user_id"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64       `gorm:"not null" json:"total_amount"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod   string        `json:"payment_method"` // e.g. "card", "cod"
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	ShippingAddress string        `json:"shipping_address"`
	CreatedAt       time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at time of order
	Size      string  `json:"size"`
}
