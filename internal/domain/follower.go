package domain

import "time"

type ShopFollower struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ShopID    uint64    `json:"shop_id" gorm:"not null;uniqueIndex:idx_shop_user"`
	UserID    uint64    `json:"user_id" gorm:"not null;uniqueIndex:idx_shop_user"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	FullName     string `json:"full_name" gorm:"->;-:migration"`
	ProfilePhoto string `json:"profile_photo" gorm:"->;-:migration"`
}
