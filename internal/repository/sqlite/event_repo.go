package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type eventRepo struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) FindByID(ctx context.Context, id uint64) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.IsPublished != nil {
		q = q.Where("is_published = ?", *filter.IsPublished)
	}

	var out []domain.Event
	err := q.Order("start_date ASC").Limit(filter.Limit).Offset(filter.Offset).Find(&out).Error
	return out, err
}

func (r *eventRepo) ListByOrganizer(ctx context.Context, organizerID uint64) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *eventRepo) Save(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepo) IncrementViews(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *eventRepo) Register(ctx context.Context, eventID, userID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e domain.Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "event not found")
		}
		if err != nil {
			return err
		}

		if e.MaxAttendees != nil && e.RegistrationsCount >= *e.MaxAttendees {
			return apperr.New(apperr.KindInvalidArgument, "event is full")
		}

		var n int64
		err = tx.Model(&domain.EventRegistration{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.New(apperr.KindInvalidArgument, "already registered")
		}

		reg := domain.EventRegistration{EventID: eventID, UserID: userID, Status: "registered"}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}
		return tx.Model(&e).
			Update("registrations_count", gorm.Expr("registrations_count + 1")).Error
	})
}

func (r *eventRepo) ListRegistrations(ctx context.Context, eventID uint64) ([]domain.EventRegistration, error) {
	var out []domain.EventRegistration
	err := r.db.WithContext(ctx).
		Table("event_registrations er").
		Select("er.*, u.full_name, u.email, u.phone").
		Joins("JOIN users u ON er.user_id = u.id").
		Where("er.event_id = ?", eventID).
		Order("er.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *eventRepo) SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("slug = ? AND id != ?", slug, excludeID).
		Count(&n).Error
	return n > 0, err
}
