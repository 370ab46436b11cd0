package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func TestEventService_Create(t *testing.T) {
	start := time.Now().Add(72 * time.Hour)

	t.Run("free flag derived from ticket price", func(t *testing.T) {
		events := new(mocks.MockEventRepository)
		events.On("SlugTaken", mock.Anything, "market-day", uint64(0)).Return(false, nil)
		events.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

		svc := NewEventService(events, new(mocks.MockShopRepository))
		event, err := svc.Create(context.Background(), 1, &domain.Event{Title: "Market Day", StartDate: start, TicketPrice: 15})
		require.NoError(t, err)
		assert.False(t, event.IsFree)
		assert.Equal(t, uint64(1), event.OrganizerID)
		assert.Equal(t, domain.EventStatusDraft, event.Status)
	})

	t.Run("missing title", func(t *testing.T) {
		svc := NewEventService(new(mocks.MockEventRepository), new(mocks.MockShopRepository))
		_, err := svc.Create(context.Background(), 1, &domain.Event{StartDate: start})
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})

	t.Run("missing start date", func(t *testing.T) {
		svc := NewEventService(new(mocks.MockEventRepository), new(mocks.MockShopRepository))
		_, err := svc.Create(context.Background(), 1, &domain.Event{Title: "Market Day"})
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})

	t.Run("shop-bound event needs the shop owner", func(t *testing.T) {
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(&domain.Shop{ID: 3, OwnerID: 9}, nil)

		shopID := uint64(3)
		svc := NewEventService(new(mocks.MockEventRepository), shops)
		_, err := svc.Create(context.Background(), 1, &domain.Event{Title: "Market Day", StartDate: start, ShopID: &shopID})
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})
}

func TestEventService_ListRegistrations(t *testing.T) {
	t.Run("organizer only", func(t *testing.T) {
		events := new(mocks.MockEventRepository)
		events.On("FindByID", mock.Anything, uint64(4)).Return(&domain.Event{ID: 4, OrganizerID: 1}, nil)

		svc := NewEventService(events, new(mocks.MockShopRepository))
		_, err := svc.ListRegistrations(context.Background(), 4, 42)
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("organizer sees attendees", func(t *testing.T) {
		events := new(mocks.MockEventRepository)
		events.On("FindByID", mock.Anything, uint64(4)).Return(&domain.Event{ID: 4, OrganizerID: 1}, nil)
		events.On("ListRegistrations", mock.Anything, uint64(4)).Return([]domain.EventRegistration{{EventID: 4, UserID: 2}}, nil)

		svc := NewEventService(events, new(mocks.MockShopRepository))
		regs, err := svc.ListRegistrations(context.Background(), 4, 1)
		require.NoError(t, err)
		assert.Len(t, regs, 1)
	})
}
