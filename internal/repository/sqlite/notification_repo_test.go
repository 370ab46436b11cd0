package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplink/internal/domain"
)

func TestNotificationRepo_ListByUser(t *testing.T) {
	db := testDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Notification{
			UserID:  2,
			Type:    domain.NotificationTypeOrderPlaced,
			Message: fmt.Sprintf("New order #%d", i+1),
			IsRead:  i%2 == 0,
		}))
	}

	t.Run("limit bounds the result set", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, 2, nil, 4)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("unread filter", func(t *testing.T) {
		unread := false
		got, err := repo.ListByUser(ctx, 2, &unread, 50)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		for _, n := range got {
			assert.False(t, n.IsRead)
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, 9, nil, 50)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
