package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusCompleted))
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusCancelled))

	assert.False(t, CanTransition(OrderStatusCompleted, OrderStatusCancelled))
	assert.False(t, CanTransition(OrderStatusCancelled, OrderStatusCompleted))
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatus("shipped"), OrderStatusCompleted))
}
