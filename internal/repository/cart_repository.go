package repository

import (
	"context"

	"shoplink/internal/domain"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]domain.CartItem, error)
	Find(ctx context.Context, userID, productID uint64) (*domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) error
	UpdateQuantity(ctx context.Context, userID, productID uint64, quantity int64) (bool, error)
	Delete(ctx context.Context, userID, productID uint64) (bool, error)
	Clear(ctx context.Context, userID uint64) error
}
