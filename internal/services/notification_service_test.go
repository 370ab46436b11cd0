package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func TestNotificationService_List(t *testing.T) {
	// The cap rides down to the query as a LIMIT rather than being
	// applied after fetching everything.
	notifications := new(mocks.MockNotificationRepository)
	notifications.On("ListByUser", mock.Anything, uint64(2), (*bool)(nil), 50).
		Return([]domain.Notification{{ID: 1, UserID: 2}}, nil)

	svc := NewNotificationService(notifications)
	got, err := svc.List(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	notifications.AssertExpectations(t)
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("unknown notification", func(t *testing.T) {
		notifications := new(mocks.MockNotificationRepository)
		notifications.On("MarkRead", mock.Anything, uint64(7), uint64(2)).Return(false, nil)

		svc := NewNotificationService(notifications)
		err := svc.MarkRead(context.Background(), 7, 2)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("marks read", func(t *testing.T) {
		notifications := new(mocks.MockNotificationRepository)
		notifications.On("MarkRead", mock.Anything, uint64(7), uint64(2)).Return(true, nil)

		svc := NewNotificationService(notifications)
		assert.NoError(t, svc.MarkRead(context.Background(), 7, 2))
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	notifications := new(mocks.MockNotificationRepository)
	notifications.On("UnreadCount", mock.Anything, uint64(2)).Return(int64(4), nil)

	svc := NewNotificationService(notifications)
	n, err := svc.UnreadCount(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
