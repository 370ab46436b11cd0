package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

type Order struct {
	ID              uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          uint64      `json:"user_id" gorm:"not null;index"`
	ShopID          uint64      `json:"shop_id" gorm:"not null;index"`
	Status          OrderStatus `json:"status" gorm:"default:'pending'"`
	TotalAmount     float64     `json:"total_amount" gorm:"not null"`
	Currency        string      `json:"currency" gorm:"default:'USD'"`
	PaymentMethod   string      `json:"payment_method"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items" gorm:"-"`
	CreatedAt       time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

type OrderItem struct {
	ID        uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64  `json:"order_id" gorm:"not null;index"`
	ProductID uint64  `json:"product_id" gorm:"not null"`
	Quantity  int64   `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
	Subtotal  float64 `json:"subtotal" gorm:"not null"`

	// Denormalized for display, filled by the join on read.
	ProductName string `json:"name" gorm:"->;-:migration"`
	ImageURL    string `json:"image_url" gorm:"->;-:migration"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type Payment struct {
	ID        uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64        `json:"order_id" gorm:"not null;index"`
	Provider  string        `json:"provider"`
	Reference string        `json:"reference"`
	Amount    float64       `json:"amount" gorm:"not null"`
	Currency  string        `json:"currency" gorm:"default:'USD'"`
	Status    PaymentStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// OrderItemInput is one requested line of a purchase.
type OrderItemInput struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
