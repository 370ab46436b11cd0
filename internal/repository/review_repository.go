package repository

import (
	"context"

	"shoplink/internal/domain"
)

type ReviewRepository interface {
	// CreateShopReview inserts the review and refreshes the shop's
	// reviews_count and average rating in one transaction.
	CreateShopReview(ctx context.Context, review *domain.ShopReview) error
	HasShopReview(ctx context.Context, shopID, userID uint64) (bool, error)
	ListShopReviews(ctx context.Context, shopID uint64) ([]domain.ShopReview, error)

	CreateProductReview(ctx context.Context, review *domain.ProductReview) error
	HasProductReview(ctx context.Context, productID, userID uint64) (bool, error)
	ListProductReviews(ctx context.Context, productID uint64) ([]domain.ProductReview, error)
}
