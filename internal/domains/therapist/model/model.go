package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "therapists"
	EntityName = "therapist"

	FieldID         = "id"
	FieldName       = "name"
	FieldStatus     = "status"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldDayOffDate = "day_off_date"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusDayOff   Status = "day_off"
	StatusResigned Status = "resigned"
)

// CanTransitionTo enumerates the legal lifecycle moves: active and day_off
// swap freely, resigned is terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusActive:
		return target == StatusDayOff || target == StatusResigned
	case StatusDayOff:
		return target == StatusActive || target == StatusResigned
	case StatusResigned:
		return false
	default:
		return false
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDayOff, StatusResigned:
		return true
	default:
		return false
	}
}

type Therapist struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Status     Status     `db:"status"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    *time.Time `db:"end_date"`
	DayOffDate *time.Time `db:"day_off_date"`
	model.Metadata
}
