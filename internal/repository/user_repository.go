package repository

import (
	"context"

	"shoplink/internal/domain"
)

// Repositories return (nil, nil) when the record does not exist; callers
// translate absence into domain errors.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}
