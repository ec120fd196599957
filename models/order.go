package models

import "time"

type OrderStatus string
type PaymentKind string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"

	PaymentCash   PaymentKind = "Cash"
	PaymentPayPal PaymentKind = "PayPal"
)

// ShippingAddress is embedded in Order; the order keeps its own copy so a
// later edit of the user's address book never rewrites history.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Country string `json:"country"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          string          `gorm:"index;not null" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"-"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	DeliveryFee     float64         `gorm:"not null;check:delivery_fee >= 0" json:"deliveryFee"`
	Payment         PaymentKind     `gorm:"type:VARCHAR(20);not null" json:"payment"`
	PaymentMethod   string          `gorm:"not null" json:"paymentMethod"`
	TotalPrice      float64         `gorm:"not null;check:total_price >= 0" json:"totalPrice"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	Product      Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity     int     `gorm:"not null;check:quantity >= 1" json:"quantity"`
	PriceAtOrder float64 `gorm:"not null;check:price_at_order >= 0" json:"priceAtOrder"`
}
