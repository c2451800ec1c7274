package service

import "time"

// SlotCandidates returns every candidate start time on the given calendar
// date, stepping through business hours at the given granularity. The close
// hour bounds candidate starts; whether the full interval fits before close
// is the availability filter's concern, not the grid's.
func SlotCandidates(date time.Time, granularityMin, openHour, closeHour int) []time.Time {
	if granularityMin <= 0 || closeHour <= openHour {
		return nil
	}

	open := time.Date(date.Year(), date.Month(), date.Day(), openHour, 0, 0, 0, date.Location())
	close := time.Date(date.Year(), date.Month(), date.Day(), closeHour, 0, 0, 0, date.Location())

	step := time.Duration(granularityMin) * time.Minute

	candidates := make([]time.Time, 0, int(close.Sub(open)/step))
	for cursor := open; cursor.Before(close); cursor = cursor.Add(step) {
		candidates = append(candidates, cursor)
	}

	return candidates
}

// Overlaps reports whether two half-open intervals intersect. The strict
// inequalities are load-bearing: an interval ending exactly when another
// starts does not overlap, so back-to-back bookings are legal.
func Overlaps(startA time.Time, durationAMin int, startB time.Time, durationBMin int) bool {
	endA := startA.Add(time.Duration(durationAMin) * time.Minute)
	endB := startB.Add(time.Duration(durationBMin) * time.Minute)

	return startA.Before(endB) && endA.After(startB)
}
