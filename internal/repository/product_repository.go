package repository

import (
	"context"

	"shoplink/internal/domain"
)

type ProductRepository interface {
	// Create inserts the product and bumps the owning shop's product_count
	// in one transaction.
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindAvailableByID(ctx context.Context, id uint64) (*domain.Product, error)
	ListByShop(ctx context.Context, shopID uint64) ([]domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	// SoftDelete marks the product unavailable and decrements the shop's
	// product_count.
	SoftDelete(ctx context.Context, id uint64) error
	IncrementViews(ctx context.Context, id uint64) error
	SlugTaken(ctx context.Context, shopID uint64, slug string, excludeID uint64) (bool, error)
}
