package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lotus/internal/domains/therapist/model"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "active to day_off", from: model.StatusActive, to: model.StatusDayOff, want: true},
		{name: "active to resigned", from: model.StatusActive, to: model.StatusResigned, want: true},
		{name: "day_off back to active", from: model.StatusDayOff, to: model.StatusActive, want: true},
		{name: "day_off to resigned", from: model.StatusDayOff, to: model.StatusResigned, want: true},
		{name: "resigned is terminal", from: model.StatusResigned, to: model.StatusActive, want: false},
		{name: "resigned stays resigned", from: model.StatusResigned, to: model.StatusDayOff, want: false},
		{name: "unknown status", from: model.Status("vacation"), to: model.StatusActive, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, model.StatusActive.Valid())
	assert.True(t, model.StatusDayOff.Valid())
	assert.True(t, model.StatusResigned.Valid())
	assert.False(t, model.Status("vacation").Valid())
}
