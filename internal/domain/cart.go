package domain

import "time"

type CartItem struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_product"`
	ProductID uint64    `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int64     `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Joined product/shop columns for cart display.
	ProductName string  `json:"name" gorm:"->;-:migration"`
	Price       float64 `json:"price" gorm:"->;-:migration"`
	ImageURL    string  `json:"image_url" gorm:"->;-:migration"`
	ShopID      uint64  `json:"shop_id" gorm:"->;-:migration"`
	ShopName    string  `json:"shop_name" gorm:"->;-:migration"`
}
