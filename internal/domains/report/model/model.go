package model

// RevenueSummary is the linear reduction over a set of completed bookings.
// TotalDiscount is derived as OriginalRevenue - FinalRevenue so the three
// figures always reconcile.
type RevenueSummary struct {
	OriginalRevenue  int64 `json:"original_revenue"`
	TotalDiscount    int64 `json:"total_discount"`
	FinalRevenue     int64 `json:"final_revenue"`
	TotalCommission  int64 `json:"total_commission"`
	TotalShopRevenue int64 `json:"total_shop_revenue"`
	BookingCount     int   `json:"booking_count"`
}

// TherapistStanding is one leaderboard row. Ordering is descending by
// commission; ties keep the order in which the therapist first appeared in
// the booking list.
type TherapistStanding struct {
	TherapistID   string `json:"therapist_id"`
	TherapistName string `json:"therapist_name"`
	BookingCount  int    `json:"booking_count"`
	Revenue       int64  `json:"revenue"`
	Commission    int64  `json:"commission"`
}

// ServiceStanding is one popularity row, descending by booking count, with a
// per-duration breakdown of how the service was sold.
type ServiceStanding struct {
	ServiceID    string      `json:"service_id"`
	ServiceName  string      `json:"service_name"`
	BookingCount int         `json:"booking_count"`
	Revenue      int64       `json:"revenue"`
	ByDuration   map[int]int `json:"by_duration"`
}

// Bucket is one temporal histogram bar.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TemporalBreakdown holds the three booking-time histograms. ByWeekday and
// ByTimeSlot have fixed cardinality and keep zero buckets; ByHour is sparse
// over 06:00-23:00.
type TemporalBreakdown struct {
	ByWeekday  []Bucket `json:"by_weekday"`
	ByTimeSlot []Bucket `json:"by_time_slot"`
	ByHour     []Bucket `json:"by_hour"`
}
