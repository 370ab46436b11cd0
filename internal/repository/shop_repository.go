package repository

import (
	"context"

	"shoplink/internal/domain"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	FindByID(ctx context.Context, id uint64) (*domain.Shop, error)
	FindActiveByID(ctx context.Context, id uint64) (*domain.Shop, error)
	List(ctx context.Context, category string, limit, offset int) ([]domain.Shop, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Shop, error)
	Save(ctx context.Context, shop *domain.Shop) error
	SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error)
}
