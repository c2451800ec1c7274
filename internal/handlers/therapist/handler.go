package therapist

import (
	"net/http"

	"lotus/infras/otel"
	"lotus/internal/domains/therapist/model"
	"lotus/internal/domains/therapist/model/dto"
	"lotus/internal/domains/therapist/service"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Therapist
	otel    otel.Otel
}

func New(service service.Therapist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/therapists", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTherapist)
		routerGroup.Get("/", handler.GetTherapists)
		routerGroup.Get("/{id}", handler.GetTherapistByID)
		routerGroup.Patch("/{id}", handler.UpdateTherapist)
		routerGroup.Post("/{id}/day-off", handler.SetDayOff)
		routerGroup.Post("/{id}/activate", handler.Activate)
		routerGroup.Post("/{id}/resign", handler.Resign)
	})
}

// CreateTherapist handles the creation of a new therapist.
// @Summary Create a new therapist
// @Description Register a therapist; they start in active status.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param request body dto.CreateTherapistRequest true "Therapist payload"
// @Success 201 {object} response.Data[dto.TherapistResponse] "Therapist created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists [post]
// @Security BearerAuth
func (handler *Handler) CreateTherapist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTherapist")
	defer scope.End()

	var req dto.CreateTherapistRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create therapist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTherapists retrieves therapists.
// @Summary Get all therapists
// @Description Retrieve therapists with optional filtering and pagination.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetTherapistsResponse] "List of therapists"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists [get]
func (handler *Handler) GetTherapists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTherapists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	therapists, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get therapists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapists retrieved successfully")

	response.WithJSON(w, http.StatusOK, therapists)
}

// GetTherapistByID retrieves a therapist by ID.
// @Summary Get a therapist by ID
// @Description Retrieve a therapist by their unique identifier.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {object} response.Data[dto.TherapistResponse] "Therapist details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id} [get]
func (handler *Handler) GetTherapistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTherapistByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	therapist, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get therapist by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist retrieved successfully")

	response.WithJSON(w, http.StatusOK, therapist)
}

// UpdateTherapist updates a therapist's profile fields.
// @Summary Update a therapist by ID
// @Description Update therapist profile fields. Status changes go through the dedicated transition endpoints.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param request body dto.UpdateTherapistRequest true "Therapist payload"
// @Success 200 {object} response.Message "Therapist updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTherapist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTherapist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTherapistRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update therapist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist updated successfully")

	response.WithMessage(w, http.StatusOK, "Therapist updated successfully")
}

// SetDayOff marks a therapist as on day off for a date.
// @Summary Set a therapist's day off
// @Description Transition an active therapist to day_off for the given date.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param request body dto.SetDayOffRequest true "Day off payload"
// @Success 200 {object} response.Message "Therapist set to day off"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id}/day-off [post]
// @Security BearerAuth
func (handler *Handler) SetDayOff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDayOff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.SetDayOffRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetDayOff(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set therapist day off")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist set to day off")

	response.WithMessage(w, http.StatusOK, "Therapist set to day off")
}

// Activate returns a therapist from day off to active.
// @Summary Activate a therapist
// @Description Transition a therapist from day_off back to active.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {object} response.Message "Therapist activated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id}/activate [post]
// @Security BearerAuth
func (handler *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Activate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Activate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to activate therapist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist activated")

	response.WithMessage(w, http.StatusOK, "Therapist activated")
}

// Resign marks a therapist as resigned.
// @Summary Resign a therapist
// @Description Terminal transition: sets the end date and blocks further status changes.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {object} response.Message "Therapist resigned"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id}/resign [post]
// @Security BearerAuth
func (handler *Handler) Resign(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Resign")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Resign(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resign therapist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist resigned")

	response.WithMessage(w, http.StatusOK, "Therapist resigned")
}
