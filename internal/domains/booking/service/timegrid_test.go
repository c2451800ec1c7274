package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lotus/internal/domains/booking/service"
)

func day(t *testing.T) time.Time {
	t.Helper()

	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
}

func TestSlotCandidates(t *testing.T) {
	tests := []struct {
		name           string
		granularityMin int
		openHour       int
		closeHour      int
		wantCount      int
		wantFirst      string
		wantLast       string
	}{
		{
			name:           "quarter hour grid over a full day",
			granularityMin: 15,
			openHour:       9,
			closeHour:      22,
			wantCount:      52,
			wantFirst:      "09:00",
			wantLast:       "21:45",
		},
		{
			name:           "hourly grid",
			granularityMin: 60,
			openHour:       10,
			closeHour:      18,
			wantCount:      8,
			wantFirst:      "10:00",
			wantLast:       "17:00",
		},
		{
			name:           "half hour grid",
			granularityMin: 30,
			openHour:       9,
			closeHour:      12,
			wantCount:      6,
			wantFirst:      "09:00",
			wantLast:       "11:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := service.SlotCandidates(day(t), tt.granularityMin, tt.openHour, tt.closeHour)

			assert.Len(t, candidates, tt.wantCount)
			assert.Equal(t, tt.wantFirst, candidates[0].Format("15:04"))
			assert.Equal(t, tt.wantLast, candidates[len(candidates)-1].Format("15:04"))

			for i := 1; i < len(candidates); i++ {
				assert.True(t, candidates[i].After(candidates[i-1]), "candidates must be ascending")
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := day(t).Add(10 * time.Hour)

	tests := []struct {
		name      string
		startA    time.Time
		durationA int
		startB    time.Time
		durationB int
		want      bool
	}{
		{
			name:      "identical intervals overlap",
			startA:    base,
			durationA: 60,
			startB:    base,
			durationB: 60,
			want:      true,
		},
		{
			name:      "partial overlap",
			startA:    base,
			durationA: 60,
			startB:    base.Add(30 * time.Minute),
			durationB: 60,
			want:      true,
		},
		{
			name:      "containment",
			startA:    base,
			durationA: 120,
			startB:    base.Add(30 * time.Minute),
			durationB: 30,
			want:      true,
		},
		{
			name:      "back to back is legal",
			startA:    base,
			durationA: 60,
			startB:    base.Add(60 * time.Minute),
			durationB: 60,
			want:      false,
		},
		{
			name:      "back to back reversed",
			startA:    base.Add(60 * time.Minute),
			durationA: 60,
			startB:    base,
			durationB: 60,
			want:      false,
		},
		{
			name:      "disjoint",
			startA:    base,
			durationA: 30,
			startB:    base.Add(2 * time.Hour),
			durationB: 30,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Overlaps(tt.startA, tt.durationA, tt.startB, tt.durationB)

			assert.Equal(t, tt.want, got)
			// Overlap is symmetric.
			assert.Equal(t, got, service.Overlaps(tt.startB, tt.durationB, tt.startA, tt.durationA))
		})
	}
}
