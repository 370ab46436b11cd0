package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

func seedEvent(t *testing.T, db *gorm.DB, maxAttendees *int64) *domain.Event {
	t.Helper()
	e := &domain.Event{
		OrganizerID:  1,
		Title:        "Market Day",
		Slug:         "market-day",
		StartDate:    time.Now().Add(48 * time.Hour),
		MaxAttendees: maxAttendees,
		IsFree:       true,
		IsPublished:  true,
		Status:       domain.EventStatusPublished,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func TestEventRepo_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registration bumps counter", func(t *testing.T) {
		db := testDB(t)
		event := seedEvent(t, db, nil)
		repo := NewEventRepository(db)

		require.NoError(t, repo.Register(ctx, event.ID, 5))

		got, err := repo.FindByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.RegistrationsCount)
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		db := testDB(t)
		event := seedEvent(t, db, nil)
		repo := NewEventRepository(db)

		require.NoError(t, repo.Register(ctx, event.ID, 5))
		err := repo.Register(ctx, event.ID, 5)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})

	t.Run("full event rejected", func(t *testing.T) {
		db := testDB(t)
		capacity := int64(1)
		event := seedEvent(t, db, &capacity)
		repo := NewEventRepository(db)

		require.NoError(t, repo.Register(ctx, event.ID, 5))
		err := repo.Register(ctx, event.ID, 6)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))

		got, err := repo.FindByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.RegistrationsCount)
	})

	t.Run("unknown event", func(t *testing.T) {
		db := testDB(t)
		err := NewEventRepository(db).Register(ctx, 999, 5)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestEventRepo_List(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewEventRepository(db)

	published := seedEvent(t, db, nil)
	draft := &domain.Event{
		OrganizerID: 2,
		Title:       "Draft Meetup",
		Slug:        "draft-meetup",
		StartDate:   time.Now().Add(24 * time.Hour),
		Status:      domain.EventStatusDraft,
	}
	require.NoError(t, db.Create(draft).Error)

	yes := true
	got, err := repo.List(ctx, repository.EventFilter{IsPublished: &yes, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, published.ID, got[0].ID)
}
