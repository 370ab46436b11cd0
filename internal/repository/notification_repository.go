package repository

import (
	"context"

	"shoplink/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID uint64, isRead *bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uint64) (bool, error)
	MarkAllRead(ctx context.Context, userID uint64) error
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}
