package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTimelineCompletionPrefix(t *testing.T) {
	tests := []struct {
		status        OrderStatus
		wantCompleted int
	}{
		{StatusPending, 1},
		{StatusConfirmed, 2},
		{StatusPreparing, 3},
		{StatusOutForDelivery, 4},
		{StatusDelivered, 5},
	}

	for _, tt := range tests {
		milestones := StatusTimeline(tt.status, DeliveryTypeDelivery)
		require.Len(t, milestones, 5, "status %s", tt.status)

		// Completion is a prefix: everything at or before the current
		// status, nothing after it.
		for i, m := range milestones {
			assert.Equal(t, i < tt.wantCompleted, m.Completed, "status %s milestone %d", tt.status, i)
		}
	}
}

func TestStatusTimelineCancelledHasNoTimeline(t *testing.T) {
	assert.Nil(t, StatusTimeline(StatusCancelled, DeliveryTypeDelivery))
	assert.Nil(t, StatusTimeline(StatusCancelled, DeliveryTypePickup))
}

func TestStatusTimelineUnknownStatusRendersAsPending(t *testing.T) {
	milestones := StatusTimeline("warp_speed", DeliveryTypeDelivery)
	require.Len(t, milestones, 5)
	assert.True(t, milestones[0].Completed)
	for _, m := range milestones[1:] {
		assert.False(t, m.Completed)
	}
}

func TestStatusTimelineLabelsFollowDeliveryType(t *testing.T) {
	delivery := StatusTimeline(StatusPending, DeliveryTypeDelivery)
	assert.Equal(t, "Out for delivery", delivery[3].Label)
	assert.Equal(t, "Delivered", delivery[4].Label)

	pickup := StatusTimeline(StatusPending, DeliveryTypePickup)
	assert.Equal(t, "Ready for pickup", pickup[3].Label)
	assert.Equal(t, "Picked up", pickup[4].Label)

	// The first three steps are shared.
	for i := 0; i < 3; i++ {
		assert.Equal(t, delivery[i].Label, pickup[i].Label)
	}
}

func TestStatusTimelineStatusOrdering(t *testing.T) {
	milestones := StatusTimeline(StatusPreparing, DeliveryTypeDelivery)
	want := []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered}
	for i, m := range milestones {
		assert.Equal(t, want[i], m.Status)
	}
}
