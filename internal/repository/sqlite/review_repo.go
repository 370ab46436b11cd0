package sqlite

import (
	"context"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) CreateShopReview(ctx context.Context, review *domain.ShopReview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Shop{}).Where("id = ?", review.ShopID).Updates(map[string]any{
			"reviews_count": gorm.Expr("reviews_count + 1"),
			"rating":        gorm.Expr("(SELECT AVG(rating) FROM shop_reviews WHERE shop_id = ?)", review.ShopID),
		}).Error
	})
}

func (r *reviewRepo) HasShopReview(ctx context.Context, shopID, userID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ShopReview{}).
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *reviewRepo) ListShopReviews(ctx context.Context, shopID uint64) ([]domain.ShopReview, error) {
	var out []domain.ShopReview
	err := r.db.WithContext(ctx).
		Table("shop_reviews sr").
		Select("sr.*, u.full_name, u.profile_photo").
		Joins("JOIN users u ON sr.user_id = u.id").
		Where("sr.shop_id = ?", shopID).
		Order("sr.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *reviewRepo) CreateProductReview(ctx context.Context, review *domain.ProductReview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Product{}).Where("id = ?", review.ProductID).Updates(map[string]any{
			"reviews_count": gorm.Expr("reviews_count + 1"),
			"rating":        gorm.Expr("(SELECT AVG(rating) FROM product_reviews WHERE product_id = ?)", review.ProductID),
		}).Error
	})
}

func (r *reviewRepo) HasProductReview(ctx context.Context, productID, userID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ProductReview{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *reviewRepo) ListProductReviews(ctx context.Context, productID uint64) ([]domain.ProductReview, error) {
	var out []domain.ProductReview
	err := r.db.WithContext(ctx).
		Table("product_reviews pr").
		Select("pr.*, u.full_name, u.profile_photo").
		Joins("JOIN users u ON pr.user_id = u.id").
		Where("pr.product_id = ?", productID).
		Order("pr.created_at DESC").
		Scan(&out).Error
	return out, err
}
