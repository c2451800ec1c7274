package report

import (
	"context"
	"net/http"

	"lotus/infras/otel"
	"lotus/internal/domains/report/model/dto"
	"lotus/internal/domains/report/service"
	"lotus/shared/constant"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/leaderboard", handler.GetLeaderboard)
		routerGroup.Get("/popularity", handler.GetPopularity)
		routerGroup.Get("/temporal", handler.GetTemporal)
		routerGroup.Post("/export", handler.ExportRevenue)
	})
}

// GetRevenue reports the revenue split over a date range.
// @Summary Get the revenue summary
// @Description Aggregate original, discount, final, commission and shop revenue over completed bookings in [from, to].
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueSummaryResponse] "Revenue summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	handler.ranged(w, r, "GetRevenue", func(ctx context.Context, req dto.RangeRequest) (any, error) {
		return handler.service.Revenue(ctx, req)
	})
}

// GetLeaderboard ranks therapists by earned commission.
// @Summary Get the therapist leaderboard
// @Description Rank therapists by commission over completed bookings in [from, to].
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.LeaderboardResponse] "Therapist leaderboard"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/leaderboard [get]
func (handler *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	handler.ranged(w, r, "GetLeaderboard", func(ctx context.Context, req dto.RangeRequest) (any, error) {
		return handler.service.Leaderboard(ctx, req)
	})
}

// GetPopularity ranks services by booking count.
// @Summary Get service popularity
// @Description Rank services by booking count over completed bookings in [from, to], with a per-duration breakdown.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.PopularityResponse] "Service popularity"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/popularity [get]
func (handler *Handler) GetPopularity(w http.ResponseWriter, r *http.Request) {
	handler.ranged(w, r, "GetPopularity", func(ctx context.Context, req dto.RangeRequest) (any, error) {
		return handler.service.Popularity(ctx, req)
	})
}

// GetTemporal reports booking counts per weekday, time slot and hour.
// @Summary Get the temporal breakdown
// @Description Booking histograms by weekday, time slot and hour over completed bookings in [from, to].
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.TemporalResponse] "Temporal breakdown"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/temporal [get]
func (handler *Handler) GetTemporal(w http.ResponseWriter, r *http.Request) {
	handler.ranged(w, r, "GetTemporal", func(ctx context.Context, req dto.RangeRequest) (any, error) {
		return handler.service.Temporal(ctx, req)
	})
}

// ExportRevenue writes a CSV of the range's completed bookings to object storage.
// @Summary Export the revenue report
// @Description Render completed bookings in [from, to] as CSV, upload it, and return the object URL.
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.ExportRequest true "Export range"
// @Success 201 {object} response.Data[dto.ExportResponse] "Export URL"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/export [post]
// @Security BearerAuth
func (handler *Handler) ExportRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportRevenue")
	defer scope.End()

	var req dto.ExportRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Export(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report exported successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

func (handler *Handler) ranged(w http.ResponseWriter, r *http.Request, scopeName string, fn func(ctx context.Context, req dto.RangeRequest) (any, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+scopeName)
	defer scope.End()

	req := dto.RangeRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := fn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report built successfully")

	response.WithJSON(w, http.StatusOK, res)
}
