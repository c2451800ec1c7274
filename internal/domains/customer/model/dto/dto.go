package dto

import (
	"time"

	"lotus/internal/domains/customer/model"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/phone"
	"lotus/shared/timezone"
)

type UpsertCustomerRequest struct {
	Phone           string `json:"phone"             validate:"required,phone"`
	Name            string `json:"name"              validate:"required,max=100"`
	Channel         string `json:"channel"           validate:"omitempty,max=50"`
	LastServiceID   string `json:"last_service_id"   validate:"omitempty,uuid"`
	LastTherapistID string `json:"last_therapist_id" validate:"omitempty,uuid"`
}

// ToModel builds the identity record; the counters stay at their zero values
// because the upsert statement never touches them.
func (c *UpsertCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		Phone:           phone.Normalize(c.Phone),
		Name:            c.Name,
		Channel:         c.Channel,
		LastServiceID:   c.LastServiceID,
		LastTherapistID: c.LastTherapistID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MergeCustomerRequest struct {
	FromPhone string `json:"from_phone" validate:"required,phone"`
	ToPhone   string `json:"to_phone"   validate:"required,phone"`
}

type ChangeContactKeyRequest struct {
	NewPhone string `json:"new_phone" validate:"required,phone"`
}

type CustomerResponse struct {
	Phone           string `json:"phone"`
	Name            string `json:"name"`
	Channel         string `json:"channel,omitempty"`
	TotalVisits     int    `json:"total_visits"`
	TotalSpent      int64  `json:"total_spent"`
	FirstVisit      string `json:"first_visit,omitempty"`
	LastVisit       string `json:"last_visit,omitempty"`
	LastServiceID   string `json:"last_service_id,omitempty"`
	LastTherapistID string `json:"last_therapist_id,omitempty"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(mod model.Customer) {
	r.Phone = mod.Phone
	r.Name = mod.Name
	r.Channel = mod.Channel
	r.TotalVisits = mod.TotalVisits
	r.TotalSpent = mod.TotalSpent
	r.FirstVisit = formatOptionalTime(mod.FirstVisit)
	r.LastVisit = formatOptionalTime(mod.LastVisit)
	r.LastServiceID = mod.LastServiceID
	r.LastTherapistID = mod.LastTherapistID
	r.Metadata.FromModel(mod.Metadata)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return timezone.Format(*t, constant.DateFormat)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
