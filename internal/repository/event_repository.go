package repository

import (
	"context"

	"shoplink/internal/domain"
)

type EventFilter struct {
	Status      string
	IsPublished *bool
	Limit       int
	Offset      int
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id uint64) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uint64) ([]domain.Event, error)
	Save(ctx context.Context, event *domain.Event) error
	IncrementViews(ctx context.Context, id uint64) error
	// Register inserts the registration and bumps registrations_count,
	// enforcing capacity and the one-registration-per-user rule in the
	// same transaction.
	Register(ctx context.Context, eventID, userID uint64) error
	ListRegistrations(ctx context.Context, eventID uint64) ([]domain.EventRegistration, error)
	SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error)
}
