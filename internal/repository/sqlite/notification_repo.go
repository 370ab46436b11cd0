package sqlite

import (
	"context"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID uint64, isRead *bool, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if isRead != nil {
		q = q.Where("is_read = ?", *isRead)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []domain.Notification
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, id, userID uint64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *notificationRepo) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}
