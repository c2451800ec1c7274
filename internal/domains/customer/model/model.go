package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldPhone           = "phone"
	FieldName            = "name"
	FieldChannel         = "channel"
	FieldTotalVisits     = "total_visits"
	FieldTotalSpent      = "total_spent"
	FieldFirstVisit      = "first_visit"
	FieldLastVisit       = "last_visit"
	FieldLastServiceID   = "last_service_id"
	FieldLastTherapistID = "last_therapist_id"
)

// Customer is keyed by normalized phone number; no surrogate ID. Visit and
// spend counters are owned by the booking completion path, never by upserts.
type Customer struct {
	Phone           string     `db:"phone"`
	Name            string     `db:"name"`
	Channel         string     `db:"channel"`
	TotalVisits     int        `db:"total_visits"`
	TotalSpent      int64      `db:"total_spent"`
	FirstVisit      *time.Time `db:"first_visit"`
	LastVisit       *time.Time `db:"last_visit"`
	LastServiceID   string     `db:"last_service_id"`
	LastTherapistID string     `db:"last_therapist_id"`
	model.Metadata
}

// Visit captures the counter deltas applied when a booking completes.
type Visit struct {
	Phone       string
	Amount      int64
	VisitAt     time.Time
	ServiceID   string
	TherapistID string
	Channel     string
}
