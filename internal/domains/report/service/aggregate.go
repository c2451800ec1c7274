package service

import (
	"fmt"
	"sort"

	bookingModel "lotus/internal/domains/booking/model"
	"lotus/internal/domains/report/model"
)

// The aggregations below are pure functions over a booking list already
// filtered to done status, plus id-to-name lookup maps built once by the
// caller. They never hit the store themselves.

const (
	timeSlotMorning   = "morning"
	timeSlotAfternoon = "afternoon"
	timeSlotEvening   = "evening"
	timeSlotNight     = "night"

	hourBucketFirst = 6
	hourBucketLast  = 23
)

func aggregateRevenue(bookings []bookingModel.Booking) model.RevenueSummary {
	summary := model.RevenueSummary{
		BookingCount: len(bookings),
	}

	for _, booking := range bookings {
		summary.OriginalRevenue += booking.OriginalPrice
		summary.FinalRevenue += booking.FinalPrice
		summary.TotalCommission += booking.TherapistCommission
		summary.TotalShopRevenue += booking.ShopRevenue
	}

	summary.TotalDiscount = summary.OriginalRevenue - summary.FinalRevenue

	return summary
}

func aggregateLeaderboard(bookings []bookingModel.Booking, therapistNames map[string]string) []model.TherapistStanding {
	standings := []model.TherapistStanding{}
	index := map[string]int{}

	for _, booking := range bookings {
		pos, seen := index[booking.TherapistID]
		if !seen {
			pos = len(standings)
			index[booking.TherapistID] = pos

			standings = append(standings, model.TherapistStanding{
				TherapistID:   booking.TherapistID,
				TherapistName: therapistNames[booking.TherapistID],
			})
		}

		standings[pos].BookingCount++
		standings[pos].Revenue += booking.FinalPrice
		standings[pos].Commission += booking.TherapistCommission
	}

	// Stable keeps first-appearance order on commission ties.
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Commission > standings[j].Commission
	})

	return standings
}

func aggregatePopularity(bookings []bookingModel.Booking, serviceNames map[string]string) []model.ServiceStanding {
	standings := []model.ServiceStanding{}
	index := map[string]int{}

	for _, booking := range bookings {
		pos, seen := index[booking.ServiceID]
		if !seen {
			pos = len(standings)
			index[booking.ServiceID] = pos

			standings = append(standings, model.ServiceStanding{
				ServiceID:   booking.ServiceID,
				ServiceName: serviceNames[booking.ServiceID],
				ByDuration:  map[int]int{},
			})
		}

		standings[pos].BookingCount++
		standings[pos].Revenue += booking.FinalPrice
		standings[pos].ByDuration[booking.DurationMin]++
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].BookingCount > standings[j].BookingCount
	})

	return standings
}

func aggregateTemporal(bookings []bookingModel.Booking) model.TemporalBreakdown {
	weekdayCounts := [7]int{}
	slotCounts := map[string]int{}
	hourCounts := map[int]int{}

	for _, booking := range bookings {
		weekdayCounts[int(booking.StartTime.Weekday())]++

		hour := booking.StartTime.Hour()
		slotCounts[timeSlotFor(hour)]++

		if hour >= hourBucketFirst && hour <= hourBucketLast {
			hourCounts[hour]++
		}
	}

	breakdown := model.TemporalBreakdown{}

	// Fixed-cardinality buckets keep their zero entries.
	for day := range weekdayCounts {
		breakdown.ByWeekday = append(breakdown.ByWeekday, model.Bucket{
			Label: weekdayLabel(day),
			Count: weekdayCounts[day],
		})
	}

	for _, slot := range []string{timeSlotMorning, timeSlotAfternoon, timeSlotEvening, timeSlotNight} {
		breakdown.ByTimeSlot = append(breakdown.ByTimeSlot, model.Bucket{
			Label: slot,
			Count: slotCounts[slot],
		})
	}

	// ByHour is sparse: hours with no bookings are omitted.
	for hour := hourBucketFirst; hour <= hourBucketLast; hour++ {
		if hourCounts[hour] == 0 {
			continue
		}

		breakdown.ByHour = append(breakdown.ByHour, model.Bucket{
			Label: fmt.Sprintf("%02d:00", hour),
			Count: hourCounts[hour],
		})
	}

	sortBucketsDesc(breakdown.ByWeekday)
	sortBucketsDesc(breakdown.ByTimeSlot)
	sortBucketsDesc(breakdown.ByHour)

	return breakdown
}

func timeSlotFor(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return timeSlotMorning
	case hour >= 12 && hour < 17:
		return timeSlotAfternoon
	case hour >= 17 && hour < 21:
		return timeSlotEvening
	default:
		return timeSlotNight
	}
}

func weekdayLabel(day int) string {
	return [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}[day]
}

func sortBucketsDesc(buckets []model.Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
}
