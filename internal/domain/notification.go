package domain

import "time"

const (
	NotificationTypeOrderPlaced = "order_placed"
	NotificationTypeOrderStatus = "order_status"
	NotificationTypeNewFollower = "new_follower"
)

type Notification struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `json:"user_id" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
