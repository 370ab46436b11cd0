package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

const (
	unreadCountTTL        = 30 * time.Second
	notificationListLimit = 50
)

type NotificationService struct {
	notifications repository.NotificationRepository
	redisClient   *redis.Client
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *NotificationService) List(ctx context.Context, userID uint64, isRead *bool) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, isRead, notificationListLimit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint64) error {
	updated, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.New(apperr.KindNotFound, "notification not found")
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) error {
	if err := s.notifications.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

// UnreadCount is cached briefly so badge polling does not hit the
// database on every request.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	key := unreadCountKey(userID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, key).Result()
		if err == nil {
			if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	n, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	if s.redisClient != nil {
		s.redisClient.Set(ctx, key, n, unreadCountTTL)
	}
	return n, nil
}

func (s *NotificationService) invalidateUnreadCount(ctx context.Context, userID uint64) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, unreadCountKey(userID))
}

func unreadCountKey(userID uint64) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}
