package dto

import (
	"lotus/internal/domains/report/model"
)

// RangeRequest selects completed bookings whose start time falls on a day
// within [From, To], both inclusive.
type RangeRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to"   validate:"required,datetime=2006-01-02"`
}

type RevenueSummaryResponse struct {
	From     string               `json:"from"`
	To       string               `json:"to"`
	Currency string               `json:"currency"`
	Summary  model.RevenueSummary `json:"summary"`
}

type LeaderboardResponse struct {
	From      string                    `json:"from"`
	To        string                    `json:"to"`
	Standings []model.TherapistStanding `json:"standings"`
}

type PopularityResponse struct {
	From      string                  `json:"from"`
	To        string                  `json:"to"`
	Standings []model.ServiceStanding `json:"standings"`
}

type TemporalResponse struct {
	From      string                  `json:"from"`
	To        string                  `json:"to"`
	Breakdown model.TemporalBreakdown `json:"breakdown"`
}

type ExportRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to"   validate:"required,datetime=2006-01-02"`
}

type ExportResponse struct {
	URL string `json:"url"`
}
