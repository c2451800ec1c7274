package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"lotus/config"
	"lotus/infras/otel"
	"lotus/infras/s3"
	bookingModel "lotus/internal/domains/booking/model"
	bookingRepository "lotus/internal/domains/booking/repository"
	catalogModel "lotus/internal/domains/catalog/model"
	catalogRepository "lotus/internal/domains/catalog/repository"
	"lotus/internal/domains/report/model/dto"
	therapistModel "lotus/internal/domains/therapist/model"
	therapistRepository "lotus/internal/domains/therapist/repository"
	"lotus/shared"
	"lotus/shared/cache"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheRevenueReport     = "report:revenue"
	cacheLeaderboardReport = "report:leaderboard"
	cachePopularityReport  = "report:popularity"
	cacheTemporalReport    = "report:temporal"

	exportDirectory = "reports"
)

type Report interface {
	Revenue(ctx context.Context, req dto.RangeRequest) (dto.RevenueSummaryResponse, error)
	Leaderboard(ctx context.Context, req dto.RangeRequest) (dto.LeaderboardResponse, error)
	Popularity(ctx context.Context, req dto.RangeRequest) (dto.PopularityResponse, error)
	Temporal(ctx context.Context, req dto.RangeRequest) (dto.TemporalResponse, error)
	Export(ctx context.Context, req dto.ExportRequest) (dto.ExportResponse, error)
}

type serviceImpl struct {
	bookingRepo   bookingRepository.Booking
	therapistRepo therapistRepository.Therapist
	catalogRepo   catalogRepository.Catalog
	storage       s3.S3
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	bookingRepo bookingRepository.Booking,
	therapistRepo therapistRepository.Therapist,
	catalogRepo catalogRepository.Catalog,
	storage s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		bookingRepo:   bookingRepo,
		therapistRepo: therapistRepo,
		catalogRepo:   catalogRepo,
		storage:       storage,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Revenue(ctx context.Context, req dto.RangeRequest) (res dto.RevenueSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheRevenueReport, req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for revenue report")

		return res, nil
	}

	bookings, err := s.doneBookings(ctx, req.From, req.To)
	if err != nil {
		return res, err
	}

	res = dto.RevenueSummaryResponse{
		From:     req.From,
		To:       req.To,
		Currency: s.cfg.Shop.Currency,
		Summary:  aggregateRevenue(bookings),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Leaderboard(ctx context.Context, req dto.RangeRequest) (res dto.LeaderboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Leaderboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheLeaderboardReport, req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for leaderboard report")

		return res, nil
	}

	bookings, err := s.doneBookings(ctx, req.From, req.To)
	if err != nil {
		return res, err
	}

	names, err := s.therapistNames(ctx)
	if err != nil {
		return res, err
	}

	res = dto.LeaderboardResponse{
		From:      req.From,
		To:        req.To,
		Standings: aggregateLeaderboard(bookings, names),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Popularity(ctx context.Context, req dto.RangeRequest) (res dto.PopularityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Popularity")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePopularityReport, req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for popularity report")

		return res, nil
	}

	bookings, err := s.doneBookings(ctx, req.From, req.To)
	if err != nil {
		return res, err
	}

	names, err := s.serviceNames(ctx)
	if err != nil {
		return res, err
	}

	res = dto.PopularityResponse{
		From:      req.From,
		To:        req.To,
		Standings: aggregatePopularity(bookings, names),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Temporal(ctx context.Context, req dto.RangeRequest) (res dto.TemporalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Temporal")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheTemporalReport, req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for temporal report")

		return res, nil
	}

	bookings, err := s.doneBookings(ctx, req.From, req.To)
	if err != nil {
		return res, err
	}

	res = dto.TemporalResponse{
		From:      req.From,
		To:        req.To,
		Breakdown: aggregateTemporal(bookings),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Export writes the range's completed bookings as a CSV object and returns
// its public URL. Exports are not cached; each call produces a fresh object.
func (s *serviceImpl) Export(ctx context.Context, req dto.ExportRequest) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.doneBookings(ctx, req.From, req.To)
	if err != nil {
		return res, err
	}

	therapistNames, err := s.therapistNames(ctx)
	if err != nil {
		return res, err
	}

	serviceNames, err := s.serviceNames(ctx)
	if err != nil {
		return res, err
	}

	data, err := renderCSV(bookings, therapistNames, serviceNames)
	if err != nil {
		log.Error().Err(err).Msg("failed to render revenue export")

		return res, fmt.Errorf("failed to render revenue export: %w", err)
	}

	fileName := fmt.Sprintf("revenue_%s_%s_%d.csv", req.From, req.To, timezone.Now().Unix())

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, exportDirectory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload revenue export")

		return res, fmt.Errorf("failed to upload revenue export: %w", err)
	}

	res.URL = url

	return res, nil
}

// doneBookings loads the range's completed bookings ordered by start time so
// the aggregations see a deterministic input ordering.
func (s *serviceImpl) doneBookings(ctx context.Context, from, to string) ([]bookingModel.Booking, error) {
	fromDay, err := timezone.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid from date") // nolint:wrapcheck
	}

	toDay, err := timezone.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid to date") // nolint:wrapcheck
	}

	if toDay.Before(fromDay) {
		return nil, failure.BadRequestFromString("to date must not precede from date") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingModel.StatusDone,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "range_start",
				Field:    bookingModel.FieldStartTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    fromDay,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "range_end",
				Field:    bookingModel.FieldStartTime,
				Operator: gDto.FilterOperatorLess,
				Value:    toDay.AddDate(0, 0, 1),
				Table:    bookingModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get completed bookings")

		return nil, fmt.Errorf("failed to get completed bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) therapistNames(ctx context.Context) (map[string]string, error) {
	therapists, err := s.therapistRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, therapistModel.FieldID, therapistModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapists")

		return nil, fmt.Errorf("failed to get therapists: %w", err)
	}

	names := make(map[string]string, len(therapists))
	for _, therapist := range therapists {
		names[therapist.ID] = therapist.Name
	}

	return names, nil
}

func (s *serviceImpl) serviceNames(ctx context.Context) (map[string]string, error) {
	services, err := s.catalogRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, catalogModel.FieldID, catalogModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	names := make(map[string]string, len(services))
	for _, service := range services {
		names[service.ID] = service.Name
	}

	return names, nil
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save report to cache")
		}
	}()
}

func renderCSV(bookings []bookingModel.Booking, therapistNames, serviceNames map[string]string) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := []string{
		"booking_id", "start_time", "duration_min", "customer_name", "customer_phone",
		"service", "therapist", "original_price", "discount_type", "discount_value",
		"final_price", "therapist_commission", "shop_revenue", "channel",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, booking := range bookings {
		record := []string{
			booking.ID,
			timezone.Format(booking.StartTime, constant.DateFormat),
			strconv.Itoa(booking.DurationMin),
			booking.CustomerName,
			booking.CustomerPhone,
			serviceNames[booking.ServiceID],
			therapistNames[booking.TherapistID],
			strconv.FormatInt(booking.OriginalPrice, 10),
			string(booking.DiscountType),
			strconv.FormatInt(booking.DiscountValue, 10),
			strconv.FormatInt(booking.FinalPrice, 10),
			strconv.FormatInt(booking.TherapistCommission, 10),
			strconv.FormatInt(booking.ShopRevenue, 10),
			booking.Channel,
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
