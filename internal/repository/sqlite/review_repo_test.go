package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplink/internal/domain"
)

func TestReviewRepo_ShopRating(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	shop := seedShop(t, db, 1)
	repo := NewReviewRepository(db)

	require.NoError(t, db.Create(&domain.User{Email: "a@example.com", Password: "x", FullName: "Ada"}).Error)
	require.NoError(t, db.Create(&domain.User{Email: "b@example.com", Password: "x", FullName: "Ben"}).Error)

	require.NoError(t, repo.CreateShopReview(ctx, &domain.ShopReview{ShopID: shop.ID, UserID: 1, Rating: 5}))
	require.NoError(t, repo.CreateShopReview(ctx, &domain.ShopReview{ShopID: shop.ID, UserID: 2, Rating: 2}))

	var s domain.Shop
	require.NoError(t, db.First(&s, shop.ID).Error)
	assert.Equal(t, int64(2), s.ReviewsCount)
	assert.InDelta(t, 3.5, s.Rating, 0.001)

	has, err := repo.HasShopReview(ctx, shop.ID, 1)
	require.NoError(t, err)
	assert.True(t, has)

	reviews, err := repo.ListShopReviews(ctx, shop.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, r := range reviews {
		assert.NotEmpty(t, r.FullName)
	}
}

func TestReviewRepo_ProductRating(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	shop := seedShop(t, db, 1)
	product := seedProduct(t, db, shop.ID, 10, 5)
	repo := NewReviewRepository(db)

	require.NoError(t, db.Create(&domain.User{Email: "a@example.com", Password: "x", FullName: "Ada"}).Error)

	require.NoError(t, repo.CreateProductReview(ctx, &domain.ProductReview{ProductID: product.ID, UserID: 1, Rating: 4}))

	var p domain.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	assert.Equal(t, int64(1), p.ReviewsCount)
	assert.InDelta(t, 4.0, p.Rating, 0.001)
}

func TestFollowerRepo_Counters(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	shop := seedShop(t, db, 1)
	repo := NewFollowerRepository(db)

	require.NoError(t, repo.Follow(ctx, shop.ID, 7))

	var s domain.Shop
	require.NoError(t, db.First(&s, shop.ID).Error)
	assert.Equal(t, int64(1), s.FollowersCount)

	following, err := repo.IsFollowing(ctx, shop.ID, 7)
	require.NoError(t, err)
	assert.True(t, following)

	removed, err := repo.Unfollow(ctx, shop.ID, 7)
	require.NoError(t, err)
	assert.True(t, removed)

	require.NoError(t, db.First(&s, shop.ID).Error)
	assert.Equal(t, int64(0), s.FollowersCount)

	removed, err = repo.Unfollow(ctx, shop.ID, 7)
	require.NoError(t, err)
	assert.False(t, removed)
}
