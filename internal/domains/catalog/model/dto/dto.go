package dto

import (
	"lotus/internal/domains/catalog/model"
	"lotus/shared"
	gDto "lotus/shared/dto"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name            string         `json:"name"              validate:"required,max=100"`
	Category        string         `json:"category"          validate:"omitempty,max=50"`
	PriceByDuration model.PriceMap `json:"price_by_duration" validate:"required,min=1,dive,keys,gt=0,endkeys,gte=0"`
	Active          *bool          `json:"active"            validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Category:        c.Category,
		PriceByDuration: c.PriceByDuration,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string         `db:"name"              json:"name"              validate:"omitempty,max=100"`
	Category        string         `db:"category"          json:"category"          validate:"omitempty,max=50"`
	PriceByDuration model.PriceMap `db:"price_by_duration" json:"price_by_duration" validate:"omitempty,min=1,dive,keys,gt=0,endkeys,gte=0"`
	Active          *bool          `db:"active"            json:"active"            validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	PriceByDuration model.PriceMap `json:"price_by_duration"`
	Durations       []int          `json:"durations"`
	Active          bool           `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(mod model.Service) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Category = mod.Category
	r.PriceByDuration = mod.PriceByDuration
	r.Durations = mod.PriceByDuration.Durations()
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
