package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"slices"

	"lotus/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldName            = "name"
	FieldCategory        = "category"
	FieldPriceByDuration = "price_by_duration"
	FieldActive          = "active"
)

// PriceMap maps a duration in minutes to the price in the smallest currency
// unit. Stored as JSONB.
type PriceMap map[int]int64

func (p PriceMap) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PriceMap) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, p)
	case string:
		return json.Unmarshal([]byte(value), p)
	case nil:
		*p = nil

		return nil
	default:
		return errors.New("unsupported source type for price map")
	}
}

// Durations returns the offered durations in ascending order.
func (p PriceMap) Durations() []int {
	durations := make([]int, 0, len(p))
	for duration := range p {
		durations = append(durations, duration)
	}

	slices.Sort(durations)

	return durations
}

type Service struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Category        string   `db:"category"`
	PriceByDuration PriceMap `db:"price_by_duration"`
	Active          bool     `db:"active"`
	model.Metadata
}
