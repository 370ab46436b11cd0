package domain

import "time"

type Shop struct {
	ID                   uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID              uint64    `json:"owner_id" gorm:"not null;index"`
	Name                 string    `json:"name" gorm:"not null"`
	Slug                 string    `json:"slug" gorm:"uniqueIndex"`
	Category             string    `json:"category"`
	Description          string    `json:"description"`
	LogoURL              string    `json:"logo_url"`
	CoverPhotoURL        string    `json:"cover_photo_url"`
	Location             string    `json:"location"`
	Address              string    `json:"address"`
	City                 string    `json:"city"`
	State                string    `json:"state"`
	Country              string    `json:"country"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	Website              string    `json:"website"`
	BusinessHours        string    `json:"business_hours"`
	Rating               float64   `json:"rating" gorm:"default:0"`
	ReviewsCount         int64     `json:"reviews_count" gorm:"default:0"`
	FollowersCount       int64     `json:"followers_count" gorm:"default:0"`
	ProductCount         int64     `json:"product_count" gorm:"default:0"`
	TotalSales           float64   `json:"total_sales" gorm:"default:0"`
	IsVerified           bool      `json:"is_verified" gorm:"default:false"`
	IsOnlineSelling      bool      `json:"is_online_selling" gorm:"default:true"`
	IsOfflineSelling     bool      `json:"is_offline_selling" gorm:"default:false"`
	AcceptsOnlinePayment bool      `json:"accepts_online_payment" gorm:"default:true"`
	AcceptsCash          bool      `json:"accepts_cash" gorm:"default:true"`
	IsActive             bool      `json:"is_active" gorm:"default:true"`
	CreatedAt            time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type ShopUpdate struct {
	Name                 *string  `json:"name"`
	Category             *string  `json:"category"`
	Description          *string  `json:"description"`
	Location             *string  `json:"location"`
	Address              *string  `json:"address"`
	City                 *string  `json:"city"`
	State                *string  `json:"state"`
	Country              *string  `json:"country"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	Phone                *string  `json:"phone"`
	Email                *string  `json:"email"`
	Website              *string  `json:"website"`
	BusinessHours        *string  `json:"business_hours"`
	IsOnlineSelling      *bool    `json:"is_online_selling"`
	IsOfflineSelling     *bool    `json:"is_offline_selling"`
	AcceptsOnlinePayment *bool    `json:"accepts_online_payment"`
	AcceptsCash          *bool    `json:"accepts_cash"`
}
