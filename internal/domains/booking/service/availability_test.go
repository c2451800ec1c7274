package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lotus/internal/domains/booking/model"
	"lotus/internal/domains/booking/service"
)

func occupying(start time.Time, durationMin int) model.Booking {
	return model.Booking{
		StartTime:   start,
		DurationMin: durationMin,
		Status:      model.StatusPending,
	}
}

func TestFilterAvailable(t *testing.T) {
	base := day(t)
	candidates := service.SlotCandidates(base, 15, 9, 12)

	tests := []struct {
		name        string
		durationMin int
		occupying   []model.Booking
		wantStarts  []string
		wantAbsent  []string
	}{
		{
			name:        "empty calendar offers every candidate",
			durationMin: 60,
			occupying:   nil,
			wantStarts:  []string{"09:00", "09:15", "11:45"},
		},
		{
			name:        "booking blocks overlapping starts only",
			durationMin: 60,
			occupying: []model.Booking{
				occupying(base.Add(10*time.Hour), 60), // 10:00 - 11:00
			},
			wantStarts: []string{"09:00", "11:00", "11:15"},
			wantAbsent: []string{"09:15", "09:30", "10:00", "10:45"},
		},
		{
			name:        "back to back start is offered",
			durationMin: 30,
			occupying: []model.Booking{
				occupying(base.Add(10*time.Hour), 60), // 10:00 - 11:00
			},
			wantStarts: []string{"09:30", "11:00"},
			wantAbsent: []string{"09:45", "10:30"},
		},
		{
			name:        "fully booked day yields empty, not error",
			durationMin: 15,
			occupying: []model.Booking{
				occupying(base.Add(9*time.Hour), 180), // 09:00 - 12:00
			},
			wantStarts: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := service.FilterAvailable(candidates, tt.durationMin, tt.occupying)

			got := map[string]bool{}
			for _, slot := range slots {
				got[slot.Start.Format("15:04")] = true
			}

			for _, want := range tt.wantStarts {
				assert.True(t, got[want], "expected %s to be offered", want)
			}

			for _, absent := range tt.wantAbsent {
				assert.False(t, got[absent], "expected %s to be blocked", absent)
			}

			if len(tt.wantStarts) == 0 {
				assert.Empty(t, slots)
			}
		})
	}
}

func TestFilterAvailableLabels(t *testing.T) {
	base := day(t)
	candidates := []time.Time{base.Add(9 * time.Hour)}

	slots := service.FilterAvailable(candidates, 90, nil)

	assert.Len(t, slots, 1)
	assert.Equal(t, "09:00 - 10:30", slots[0].Label)
}
