package repository

import (
	"context"

	"shoplink/internal/domain"
)

type OrderRepository interface {
	// Place validates the requested items against live stock and commits
	// the order, its items, the stock decrements, the shop sales counter
	// and the pending payment as one transaction. Any validation failure
	// rolls back everything. Stock is decremented with a guarded UPDATE
	// (stock_quantity >= quantity) so two concurrent orders cannot both
	// pass the check for the same units.
	Place(ctx context.Context, order *domain.Order, items []domain.OrderItemInput) (*domain.Order, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
	ListByShop(ctx context.Context, shopID uint64) ([]domain.Order, error)
	// UpdateStatus transitions pending orders to completed or cancelled;
	// completed also marks the linked payment completed.
	UpdateStatus(ctx context.Context, orderID uint64, to domain.OrderStatus) error
}
