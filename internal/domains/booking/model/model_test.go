package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lotus/internal/domains/booking/model"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to in_progress", from: model.StatusPending, to: model.StatusInProgress, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to done skips in_progress", from: model.StatusPending, to: model.StatusDone, want: false},
		{name: "in_progress to done", from: model.StatusInProgress, to: model.StatusDone, want: true},
		{name: "in_progress to cancelled", from: model.StatusInProgress, to: model.StatusCancelled, want: true},
		{name: "in_progress back to pending", from: model.StatusInProgress, to: model.StatusPending, want: false},
		{name: "done is terminal for ordinary transitions", from: model.StatusDone, to: model.StatusInProgress, want: false},
		{name: "done to cancelled", from: model.StatusDone, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "unknown status", from: model.Status("archived"), to: model.StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusCanReopen(t *testing.T) {
	assert.True(t, model.StatusDone.CanReopen())
	assert.False(t, model.StatusPending.CanReopen())
	assert.False(t, model.StatusInProgress.CanReopen())
	assert.False(t, model.StatusCancelled.CanReopen())
}

func TestStatusOccupiesSlot(t *testing.T) {
	assert.True(t, model.StatusPending.OccupiesSlot())
	assert.True(t, model.StatusInProgress.OccupiesSlot())
	assert.False(t, model.StatusDone.OccupiesSlot())
	assert.False(t, model.StatusCancelled.OccupiesSlot())
}

func TestOccupyingStatuses(t *testing.T) {
	statuses := model.OccupyingStatuses()

	assert.Equal(t, []model.Status{model.StatusPending, model.StatusInProgress}, statuses)

	for _, status := range statuses {
		assert.True(t, status.OccupiesSlot())
	}
}

func TestDiscountTypeValid(t *testing.T) {
	assert.True(t, model.DiscountNone.Valid())
	assert.True(t, model.DiscountPercentage.Valid())
	assert.True(t, model.DiscountAmount.Valid())
	assert.False(t, model.DiscountType("voucher").Valid())
}

func TestBookingEndTime(t *testing.T) {
	booking := model.Booking{
		StartTime:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		DurationMin: 90,
	}

	assert.Equal(t, time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC), booking.EndTime())
}
