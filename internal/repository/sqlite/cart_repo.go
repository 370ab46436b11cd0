package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) ListByUser(ctx context.Context, userID uint64) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Table("cart_items ci").
		Select("ci.*, p.name AS product_name, p.price, p.image_url, p.shop_id, s.name AS shop_name").
		Joins("JOIN products p ON ci.product_id = p.id").
		Joins("JOIN shops s ON p.shop_id = s.id").
		Where("ci.user_id = ? AND p.is_available = ?", userID, true).
		Order("ci.created_at DESC").
		Scan(&items).Error
	return items, err
}

func (r *cartRepo) Find(ctx context.Context, userID, productID uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) Create(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepo) UpdateQuantity(ctx context.Context, userID, productID uint64, quantity int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	return res.RowsAffected > 0, res.Error
}

func (r *cartRepo) Delete(ctx context.Context, userID, productID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartItem{})
	return res.RowsAffected > 0, res.Error
}

func (r *cartRepo) Clear(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.CartItem{}).Error
}
