package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Shop{}).Where("id = ?", product.ShopID).
			Update("product_count", gorm.Expr("product_count + 1")).Error
	})
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAvailableByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ? AND is_available = ?", id, true).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListByShop(ctx context.Context, shopID uint64) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_available = ?", shopID, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *productRepo) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) SoftDelete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Product
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Update("is_available", false).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Shop{}).Where("id = ?", p.ShopID).
			Update("product_count", gorm.Expr("product_count - 1")).Error
	})
}

func (r *productRepo) IncrementViews(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *productRepo) SlugTaken(ctx context.Context, shopID uint64, slug string, excludeID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("shop_id = ? AND slug = ? AND id != ?", shopID, slug, excludeID).
		Count(&n).Error
	return n > 0, err
}
