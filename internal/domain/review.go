package domain

import "time"

type ShopReview struct {
	ID                 uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ShopID             uint64    `json:"shop_id" gorm:"not null;index"`
	UserID             uint64    `json:"user_id" gorm:"not null"`
	Rating             int       `json:"rating" gorm:"not null"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`

	FullName     string `json:"full_name" gorm:"->;-:migration"`
	ProfilePhoto string `json:"profile_photo" gorm:"->;-:migration"`
}

type ProductReview struct {
	ID                 uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID          uint64    `json:"product_id" gorm:"not null;index"`
	UserID             uint64    `json:"user_id" gorm:"not null"`
	Rating             int       `json:"rating" gorm:"not null"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`

	FullName     string `json:"full_name" gorm:"->;-:migration"`
	ProfilePhoto string `json:"profile_photo" gorm:"->;-:migration"`
}
