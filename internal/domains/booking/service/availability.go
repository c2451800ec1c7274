package service

import (
	"fmt"
	"time"

	"lotus/internal/domains/booking/model"
	"lotus/shared/constant"
)

// FilterAvailable reduces the candidate starts to those whose interval does
// not overlap any of the given bookings. Callers pass only bookings that
// still occupy the calendar; done and cancelled ones must already be
// filtered out. An empty result is a valid answer, not an error.
//
// This is a read-time check over a snapshot. Two concurrent intakes can both
// see the same open slot, so the write path re-validates inside a
// transaction and reports a conflict instead.
func FilterAvailable(candidates []time.Time, durationMin int, occupying []model.Booking) []model.AvailableSlot {
	slots := make([]model.AvailableSlot, 0, len(candidates))

	for _, start := range candidates {
		free := true

		for i := range occupying {
			if Overlaps(start, durationMin, occupying[i].StartTime, occupying[i].DurationMin) {
				free = false

				break
			}
		}

		if free {
			slots = append(slots, model.AvailableSlot{
				Start: start,
				Label: slotLabel(start, durationMin),
			})
		}
	}

	return slots
}

func slotLabel(start time.Time, durationMin int) string {
	end := start.Add(time.Duration(durationMin) * time.Minute)

	return fmt.Sprintf("%s - %s", start.Format(constant.ClockFormat), end.Format(constant.ClockFormat))
}
