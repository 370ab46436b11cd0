package domain

import "time"

type Product struct {
	ID                 uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ShopID             uint64    `json:"shop_id" gorm:"not null;index"`
	Name               string    `json:"name" gorm:"not null"`
	Slug               string    `json:"slug" gorm:"index"`
	Description        string    `json:"description"`
	Price              float64   `json:"price" gorm:"not null"`
	OriginalPrice      *float64  `json:"original_price"`
	DiscountPercentage *float64  `json:"discount_percentage"`
	ImageURL           string    `json:"image_url"`
	StockQuantity      int64     `json:"stock_quantity" gorm:"default:0"`
	MinOrderQuantity   int64     `json:"min_order_quantity" gorm:"default:1"`
	MaxOrderQuantity   *int64    `json:"max_order_quantity"`
	SKU                string    `json:"sku"`
	Barcode            string    `json:"barcode"`
	Weight             float64   `json:"weight"`
	Dimensions         string    `json:"dimensions"`
	Category           string    `json:"category"`
	Tags               string    `json:"tags"`
	Rating             float64   `json:"rating" gorm:"default:0"`
	ReviewsCount       int64     `json:"reviews_count" gorm:"default:0"`
	ViewsCount         int64     `json:"views_count" gorm:"default:0"`
	SalesCount         int64     `json:"sales_count" gorm:"default:0"`
	IsAvailable        bool      `json:"is_available" gorm:"default:true"`
	IsInStock          bool      `json:"is_in_stock" gorm:"default:true"`
	IsFeatured         bool      `json:"is_featured" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type ProductUpdate struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price"`
	OriginalPrice    *float64 `json:"original_price"`
	StockQuantity    *int64   `json:"stock_quantity"`
	MinOrderQuantity *int64   `json:"min_order_quantity"`
	MaxOrderQuantity *int64   `json:"max_order_quantity"`
	SKU              *string  `json:"sku"`
	Barcode          *string  `json:"barcode"`
	Weight           *float64 `json:"weight"`
	Dimensions       *string  `json:"dimensions"`
	Category         *string  `json:"category"`
	Tags             *string  `json:"tags"`
	IsAvailable      *bool    `json:"is_available"`
	IsFeatured       *bool    `json:"is_featured"`
}

// DiscountPercentage derives the persisted discount from price vs original
// price, nil when there is no markdown.
func DiscountFor(price float64, originalPrice *float64) *float64 {
	if originalPrice == nil || *originalPrice <= price {
		return nil
	}
	d := (*originalPrice - price) / *originalPrice * 100
	return &d
}
