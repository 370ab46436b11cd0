package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type shopRepo struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepo{db: db}
}

func (r *shopRepo) Create(ctx context.Context, shop *domain.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepo) FindByID(ctx context.Context, id uint64) (*domain.Shop, error) {
	var s domain.Shop
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *shopRepo) FindActiveByID(ctx context.Context, id uint64) (*domain.Shop, error) {
	var s domain.Shop
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *shopRepo) List(ctx context.Context, category string, limit, offset int) ([]domain.Shop, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Shop
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}

func (r *shopRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Shop, error) {
	var out []domain.Shop
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *shopRepo) Save(ctx context.Context, shop *domain.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

func (r *shopRepo) SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Shop{}).
		Where("slug = ? AND id != ?", slug, excludeID).
		Count(&n).Error
	return n > 0, err
}
