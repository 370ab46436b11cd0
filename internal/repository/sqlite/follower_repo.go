package sqlite

import (
	"context"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type followerRepo struct {
	db *gorm.DB
}

func NewFollowerRepository(db *gorm.DB) repository.FollowerRepository {
	return &followerRepo{db: db}
}

func (r *followerRepo) Follow(ctx context.Context, shopID, userID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f := domain.ShopFollower{ShopID: shopID, UserID: userID}
		if err := tx.Create(&f).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Shop{}).Where("id = ?", shopID).
			Update("followers_count", gorm.Expr("followers_count + 1")).Error
	})
}

func (r *followerRepo) Unfollow(ctx context.Context, shopID, userID uint64) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("shop_id = ? AND user_id = ?", shopID, userID).
			Delete(&domain.ShopFollower{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&domain.Shop{}).
			Where("id = ? AND followers_count > 0", shopID).
			Update("followers_count", gorm.Expr("followers_count - 1")).Error
	})
	return removed, err
}

func (r *followerRepo) IsFollowing(ctx context.Context, shopID, userID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ShopFollower{}).
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *followerRepo) ListByShop(ctx context.Context, shopID uint64) ([]domain.ShopFollower, error) {
	var out []domain.ShopFollower
	err := r.db.WithContext(ctx).
		Table("shop_followers sf").
		Select("sf.*, u.full_name, u.profile_photo").
		Joins("JOIN users u ON sf.user_id = u.id").
		Where("sf.shop_id = ?", shopID).
		Order("sf.created_at DESC").
		Scan(&out).Error
	return out, err
}
