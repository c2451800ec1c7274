package booking

import (
	"context"
	"net/http"

	"lotus/infras/otel"
	"lotus/internal/domains/booking/model"
	"lotus/internal/domains/booking/model/dto"
	"lotus/internal/domains/booking/service"
	"lotus/shared"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/timezone"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/summary/daily", handler.GetDailySummary)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/start", handler.StartBooking)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/reopen", handler.ReopenBooking)
	})
}

// GetAvailability lists the offerable start times for a therapist.
// @Summary Get available slots
// @Description List the legal start times for a therapist, date and duration. An empty list means no availability, not an error.
// @Tags Booking
// @Accept json
// @Produce json
// @Param therapist_id query string true "Therapist ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration_min query integer true "Duration in minutes"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{
		TherapistID: r.URL.Query().Get(model.FieldTherapistID),
		Date:        r.URL.Query().Get("date"),
	}

	if durationStr := r.URL.Query().Get(model.FieldDurationMin); durationStr != "" {
		if duration, err := shared.ConvertStringToInt(durationStr); err == nil {
			req.DurationMin = duration
		}
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability computed successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// CreateBooking handles booking intake.
// @Summary Create a booking
// @Description Validate the slot, price the booking, attach the customer, and write it. A slot taken since the availability check returns 409.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Booking created successfully by staff " + staff)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings retrieves bookings.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param therapist_id query string false "Filter by therapist"
// @Param service_id query string false "Filter by service"
// @Param customer_phone query string false "Filter by customer phone"
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	equalityFields := []string{model.FieldTherapistID, model.FieldServiceID, model.FieldCustomerPhone, model.FieldStatus}
	for _, field := range equalityFields {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		if day, err := timezone.Parse(constant.DateOnlyFormat, dateStr); err == nil {
			filterGroup.Filters = append(filterGroup.Filters,
				gDto.Filter{
					ArgName:  "day_start",
					Field:    model.FieldStartTime,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    day,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "day_end",
					Field:    model.FieldStartTime,
					Operator: gDto.FilterOperatorLess,
					Value:    day.AddDate(0, 0, 1),
					Table:    model.TableName,
				},
			)
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking edits a booking's free-text fields.
// @Summary Update a booking by ID
// @Description Update booking notes and channel. Times, prices and status have their own flows.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Booking payload"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// StartBooking moves a pending booking to in_progress.
// @Summary Start a booking
// @Description Transition a pending booking to in_progress.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking started"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "StartBooking", "Booking started", handler.service.Start)
}

// CompleteBooking finishes a booking and updates the customer's counters.
// @Summary Complete a booking
// @Description Transition an in_progress booking to done and apply the customer's visit counters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking completed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CompleteBooking", "Booking completed", handler.service.Complete)
}

// CancelBooking aborts a non-terminal booking.
// @Summary Cancel a booking
// @Description Transition a pending or in_progress booking to cancelled, freeing its slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CancelBooking", "Booking cancelled", handler.service.Cancel)
}

// ReopenBooking moves a done booking back to in_progress.
// @Summary Reopen a booking
// @Description Explicitly reopen a done booking, reversing the customer's visit counters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking reopened"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reopen [post]
// @Security BearerAuth
func (handler *Handler) ReopenBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ReopenBooking", "Booking reopened", handler.service.Reopen)
}

// GetDailySummary reports one day's bookings and revenue.
// @Summary Get the daily summary
// @Description Booking counts by status plus the revenue split over the day's completed bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DailySummaryResponse] "Daily summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/summary/daily [get]
func (handler *Handler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailySummary")
	defer scope.End()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = timezone.Format(timezone.Now(), constant.DateOnlyFormat)
	}

	summary, err := handler.service.DailySummary(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily summary computed successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, scopeName, message string, fn func(ctx context.Context, id string) error) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+scopeName)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := fn(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transition booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(message)

	response.WithMessage(w, http.StatusOK, message)
}
