package repository

import (
	"context"

	"shoplink/internal/domain"
)

type FollowerRepository interface {
	Follow(ctx context.Context, shopID, userID uint64) error
	// Unfollow reports false when the user was not following.
	Unfollow(ctx context.Context, shopID, userID uint64) (bool, error)
	IsFollowing(ctx context.Context, shopID, userID uint64) (bool, error)
	ListByShop(ctx context.Context, shopID uint64) ([]domain.ShopFollower, error)
}
