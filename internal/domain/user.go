package domain

import "time"

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	ProfilePhoto string    `json:"profile_photo"`
	Bio          string    `json:"bio"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// UserUpdate carries the profile fields a user may change. Nil means
// "leave as is".
type UserUpdate struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Bio      *string `json:"bio"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Country  *string `json:"country"`
}
