package services

import (
	"context"
	"fmt"
	"log"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	rabbit "shoplink/internal/infra/rabbitmq"
	"shoplink/internal/repository"
)

type FollowerService struct {
	followers     repository.FollowerRepository
	shops         repository.ShopRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	publisher     rabbit.PublisherInterface
}

func NewFollowerService(followers repository.FollowerRepository, shops repository.ShopRepository, users repository.UserRepository, notifications repository.NotificationRepository, pub rabbit.PublisherInterface) *FollowerService {
	return &FollowerService{
		followers:     followers,
		shops:         shops,
		users:         users,
		notifications: notifications,
		publisher:     pub,
	}
}

func (s *FollowerService) Follow(ctx context.Context, shopID, userID uint64) error {
	shop, err := s.shops.FindActiveByID(ctx, shopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return apperr.New(apperr.KindNotFound, "shop not found")
	}
	if shop.OwnerID == userID {
		return apperr.New(apperr.KindInvalidArgument, "cannot follow your own shop")
	}

	following, err := s.followers.IsFollowing(ctx, shopID, userID)
	if err != nil {
		return err
	}
	if following {
		return apperr.New(apperr.KindInvalidArgument, "already following this shop")
	}

	if err := s.followers.Follow(ctx, shopID, userID); err != nil {
		return err
	}

	go s.announceFollow(context.Background(), shop, userID)
	return nil
}

func (s *FollowerService) Unfollow(ctx context.Context, shopID, userID uint64) error {
	removed, err := s.followers.Unfollow(ctx, shopID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.New(apperr.KindNotFound, "not following this shop")
	}
	return nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, shopID, userID uint64) (bool, error) {
	return s.followers.IsFollowing(ctx, shopID, userID)
}

func (s *FollowerService) ListFollowers(ctx context.Context, shopID uint64) ([]domain.ShopFollower, error) {
	return s.followers.ListByShop(ctx, shopID)
}

func (s *FollowerService) announceFollow(ctx context.Context, shop *domain.Shop, userID uint64) {
	evt := domain.ShopFollowedEvent{ShopID: shop.ID, UserID: userID}
	if err := s.publisher.Publish(ctx, domain.RoutingKeyShopFollowed, evt); err != nil {
		log.Printf("failed to publish %s for shop %d: %v", domain.RoutingKeyShopFollowed, shop.ID, err)
	}

	name := "Someone"
	if user, err := s.users.FindByID(ctx, userID); err == nil && user != nil && user.FullName != "" {
		name = user.FullName
	}
	n := &domain.Notification{
		UserID:  shop.OwnerID,
		Type:    domain.NotificationTypeNewFollower,
		Message: fmt.Sprintf("%s started following %s", name, shop.Name),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("failed to notify owner of shop %d about new follower: %v", shop.ID, err)
	}
}
