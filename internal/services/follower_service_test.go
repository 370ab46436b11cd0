package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func newFollowerService(followers *mocks.MockFollowerRepository, shops *mocks.MockShopRepository) *FollowerService {
	users := new(mocks.MockUserRepository)
	users.On("FindByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 2, FullName: "Ada"}, nil).Maybe()
	notifications := new(mocks.MockNotificationRepository)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	pub := new(mocks.MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewFollowerService(followers, shops, users, notifications, pub)
}

func TestFollowerService_Follow(t *testing.T) {
	shop := &domain.Shop{ID: 3, OwnerID: 9, Name: "Corner Store", IsActive: true}

	t.Run("follow succeeds", func(t *testing.T) {
		followers := new(mocks.MockFollowerRepository)
		shops := new(mocks.MockShopRepository)
		shops.On("FindActiveByID", mock.Anything, uint64(3)).Return(shop, nil)
		followers.On("IsFollowing", mock.Anything, uint64(3), uint64(2)).Return(false, nil)
		followers.On("Follow", mock.Anything, uint64(3), uint64(2)).Return(nil)

		svc := newFollowerService(followers, shops)
		assert.NoError(t, svc.Follow(context.Background(), 3, 2))
		followers.AssertExpectations(t)
	})

	t.Run("already following", func(t *testing.T) {
		followers := new(mocks.MockFollowerRepository)
		shops := new(mocks.MockShopRepository)
		shops.On("FindActiveByID", mock.Anything, uint64(3)).Return(shop, nil)
		followers.On("IsFollowing", mock.Anything, uint64(3), uint64(2)).Return(true, nil)

		svc := newFollowerService(followers, shops)
		err := svc.Follow(context.Background(), 3, 2)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})

	t.Run("own shop", func(t *testing.T) {
		followers := new(mocks.MockFollowerRepository)
		shops := new(mocks.MockShopRepository)
		shops.On("FindActiveByID", mock.Anything, uint64(3)).Return(shop, nil)

		svc := newFollowerService(followers, shops)
		err := svc.Follow(context.Background(), 3, 9)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})

	t.Run("missing shop", func(t *testing.T) {
		followers := new(mocks.MockFollowerRepository)
		shops := new(mocks.MockShopRepository)
		shops.On("FindActiveByID", mock.Anything, uint64(3)).Return(nil, nil)

		svc := newFollowerService(followers, shops)
		err := svc.Follow(context.Background(), 3, 2)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestFollowerService_Unfollow(t *testing.T) {
	t.Run("not following", func(t *testing.T) {
		followers := new(mocks.MockFollowerRepository)
		followers.On("Unfollow", mock.Anything, uint64(3), uint64(2)).Return(false, nil)

		svc := newFollowerService(followers, new(mocks.MockShopRepository))
		err := svc.Unfollow(context.Background(), 3, 2)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("unfollow succeeds", func(t *testing.T) {
		followers := new(mocks.MockFollowerRepository)
		followers.On("Unfollow", mock.Anything, uint64(3), uint64(2)).Return(true, nil)

		svc := newFollowerService(followers, new(mocks.MockShopRepository))
		assert.NoError(t, svc.Unfollow(context.Background(), 3, 2))
	})
}
