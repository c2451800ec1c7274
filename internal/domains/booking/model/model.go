package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerName  = "customer_name"
	FieldCustomerPhone = "customer_phone"
	FieldServiceID     = "service_id"
	FieldTherapistID   = "therapist_id"
	FieldStartTime     = "start_time"
	FieldDurationMin   = "duration_min"
	FieldStatus        = "status"
	FieldOriginalPrice = "original_price"
	FieldDiscountType  = "discount_type"
	FieldDiscountValue = "discount_value"
	FieldFinalPrice    = "final_price"
	FieldCommission    = "therapist_commission"
	FieldShopRevenue   = "shop_revenue"
	FieldNotes         = "notes"
	FieldChannel       = "channel"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// CanTransitionTo enumerates the legal lifecycle moves. done never moves
// through here; going back to in_progress requires the explicit reopen.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusDone || target == StatusCancelled
	case StatusDone, StatusCancelled:
		return false
	default:
		return false
	}
}

// CanReopen reports whether the explicit reopen transition applies.
func (s Status) CanReopen() bool {
	return s == StatusDone
}

// OccupiesSlot reports whether a booking in this status still blocks the
// therapist's calendar. Done and cancelled bookings free the slot.
func (s Status) OccupiesSlot() bool {
	return s == StatusPending || s == StatusInProgress
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// OccupyingStatuses lists the statuses that block a slot, derived from
// OccupiesSlot so repository filters and the calendar math agree on one set.
func OccupyingStatuses() []Status {
	all := []Status{StatusPending, StatusInProgress, StatusDone, StatusCancelled}

	occupying := make([]Status, 0, len(all))

	for _, status := range all {
		if status.OccupiesSlot() {
			occupying = append(occupying, status)
		}
	}

	return occupying
}

type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

func (d DiscountType) Valid() bool {
	switch d {
	case DiscountNone, DiscountPercentage, DiscountAmount:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID                  string       `db:"id"`
	CustomerName        string       `db:"customer_name"`
	CustomerPhone       string       `db:"customer_phone"`
	ServiceID           string       `db:"service_id"`
	TherapistID         string       `db:"therapist_id"`
	StartTime           time.Time    `db:"start_time"`
	DurationMin         int          `db:"duration_min"`
	Status              Status       `db:"status"`
	OriginalPrice       int64        `db:"original_price"`
	DiscountType        DiscountType `db:"discount_type"`
	DiscountValue       int64        `db:"discount_value"`
	FinalPrice          int64        `db:"final_price"`
	TherapistCommission int64        `db:"therapist_commission"`
	ShopRevenue         int64        `db:"shop_revenue"`
	Notes               string       `db:"notes"`
	Channel             string       `db:"channel"`
	model.Metadata
}

func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMin) * time.Minute)
}

// AvailableSlot is one offerable start time with its display label.
type AvailableSlot struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"`
}
