package domain

import "time"

// Routing keys for the marketplace exchange.
const (
	RoutingKeyOrderCreated = "order.created"
	RoutingKeyOrderStatus  = "order.status_changed"
	RoutingKeyShopFollowed = "shop.followed"
)

type OrderCreatedEvent struct {
	OrderID     uint64    `json:"order_id"`
	UserID      uint64    `json:"user_id"`
	ShopID      uint64    `json:"shop_id"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID uint64      `json:"order_id"`
	ShopID  uint64      `json:"shop_id"`
	From    OrderStatus `json:"from"`
	To      OrderStatus `json:"to"`
}

type ShopFollowedEvent struct {
	ShopID uint64 `json:"shop_id"`
	UserID uint64 `json:"user_id"`
}
