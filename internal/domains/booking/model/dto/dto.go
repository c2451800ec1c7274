package dto

import (
	"lotus/internal/domains/booking/model"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/timezone"
)

type AvailabilityRequest struct {
	TherapistID string `json:"therapist_id" validate:"required,uuid"`
	Date        string `json:"date"         validate:"required,datetime=2006-01-02"`
	DurationMin int    `json:"duration_min" validate:"required,gt=0"`
}

type SlotResponse struct {
	Start string `json:"start"`
	Label string `json:"label"`
}

type AvailabilityResponse struct {
	TherapistID string         `json:"therapist_id"`
	Date        string         `json:"date"`
	DurationMin int            `json:"duration_min"`
	Slots       []SlotResponse `json:"slots"`
}

func (r *AvailabilityResponse) FromSlots(therapistID, date string, durationMin int, slots []model.AvailableSlot) {
	r.TherapistID = therapistID
	r.Date = date
	r.DurationMin = durationMin

	r.Slots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i] = SlotResponse{
			Start: timezone.Format(slot.Start, constant.DateFormat),
			Label: slot.Label,
		}
	}
}

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,phone"`
	ServiceID     string `json:"service_id"     validate:"required,uuid"`
	TherapistID   string `json:"therapist_id"   validate:"required,uuid"`
	StartTime     string `json:"start_time"     validate:"required"`
	DurationMin   int    `json:"duration_min"   validate:"required,gt=0"`
	DiscountType  string `json:"discount_type"  validate:"omitempty,oneof=none percentage amount"`
	DiscountValue int64  `json:"discount_value" validate:"omitempty,gte=0"`
	Notes         string `json:"notes"          validate:"omitempty,max=500"`
	Channel       string `json:"channel"        validate:"omitempty,max=50"`
}

type UpdateBookingRequest struct {
	Notes   string `db:"notes"   json:"notes"   validate:"omitempty,max=500"`
	Channel string `db:"channel" json:"channel" validate:"omitempty,max=50"`
}

type BookingResponse struct {
	ID                  string `json:"id"`
	CustomerName        string `json:"customer_name"`
	CustomerPhone       string `json:"customer_phone"`
	ServiceID           string `json:"service_id"`
	TherapistID         string `json:"therapist_id"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	DurationMin         int    `json:"duration_min"`
	Status              string `json:"status"`
	OriginalPrice       int64  `json:"original_price"`
	DiscountType        string `json:"discount_type"`
	DiscountValue       int64  `json:"discount_value"`
	FinalPrice          int64  `json:"final_price"`
	TherapistCommission int64  `json:"therapist_commission"`
	ShopRevenue         int64  `json:"shop_revenue"`
	Notes               string `json:"notes,omitempty"`
	Channel             string `json:"channel,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.CustomerName = mod.CustomerName
	r.CustomerPhone = mod.CustomerPhone
	r.ServiceID = mod.ServiceID
	r.TherapistID = mod.TherapistID
	r.StartTime = timezone.Format(mod.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(mod.EndTime(), constant.DateFormat)
	r.DurationMin = mod.DurationMin
	r.Status = string(mod.Status)
	r.OriginalPrice = mod.OriginalPrice
	r.DiscountType = string(mod.DiscountType)
	r.DiscountValue = mod.DiscountValue
	r.FinalPrice = mod.FinalPrice
	r.TherapistCommission = mod.TherapistCommission
	r.ShopRevenue = mod.ShopRevenue
	r.Notes = mod.Notes
	r.Channel = mod.Channel
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type DailySummaryResponse struct {
	Date           string         `json:"date"`
	Currency       string         `json:"currency"`
	TotalBookings  int            `json:"total_bookings"`
	ByStatus       map[string]int `json:"by_status"`
	FinalRevenue   int64          `json:"final_revenue"`
	CommissionPaid int64          `json:"commission_paid"`
	ShopRevenue    int64          `json:"shop_revenue"`
}
