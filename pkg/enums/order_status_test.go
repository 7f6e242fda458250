package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusCancelled))

	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusConfirmed))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatus("LOST")))
}

func TestParseLineType(t *testing.T) {
	t.Parallel()

	got, err := ParseLineType("ADDON")
	assert.NoError(t, err)
	assert.Equal(t, LineTypeAddon, got)

	_, err = ParseLineType("addon")
	assert.Error(t, err)
}
