package dto

import (
	"time"

	"lotus/internal/domains/therapist/model"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"

	"github.com/google/uuid"
)

type CreateTherapistRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (c *CreateTherapistRequest) ToModel(user string) (model.Therapist, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Therapist{}, err
	}

	return model.Therapist{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Status:    model.StatusActive,
		StartDate: startDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateTherapistRequest struct {
	Name string `db:"name" json:"name" validate:"omitempty,max=100"`
}

type SetDayOffRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type TherapistResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date,omitempty"`
	DayOffDate string `json:"day_off_date,omitempty"`
	gDto.Metadata
}

func (r *TherapistResponse) FromModel(mod model.Therapist) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Status = string(mod.Status)
	r.StartDate = timezone.Format(mod.StartDate, constant.DateOnlyFormat)
	r.EndDate = formatOptionalDate(mod.EndDate)
	r.DayOffDate = formatOptionalDate(mod.DayOffDate)
	r.Metadata.FromModel(mod.Metadata)
}

func formatOptionalDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return timezone.Format(*date, constant.DateOnlyFormat)
}

type GetTherapistsResponse struct {
	Therapists []TherapistResponse `json:"therapists"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetTherapistsResponse) FromModels(models []model.Therapist, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Therapists = make([]TherapistResponse, len(models))
	for i, mod := range models {
		r.Therapists[i].FromModel(mod)
	}
}
