package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lotus/config"
	"lotus/infras/kafka"
	"lotus/infras/otel"
	"lotus/internal/domains/booking/model"
	"lotus/internal/domains/booking/model/dto"
	"lotus/internal/domains/booking/repository"
	catalogService "lotus/internal/domains/catalog/service"
	customerModel "lotus/internal/domains/customer/model"
	customerDto "lotus/internal/domains/customer/model/dto"
	customerService "lotus/internal/domains/customer/service"
	therapistModel "lotus/internal/domains/therapist/model"
	therapistService "lotus/internal/domains/therapist/service"
	"lotus/shared"
	"lotus/shared/cache"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	gModel "lotus/shared/model"
	"lotus/shared/phone"
	"lotus/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// Report caches aggregate over bookings, so any booking write stales them.
	cacheReportPrefix = "report"

	eventBookingCreated       = "booking.created"
	eventBookingStatusChanged = "booking.status_changed"
)

type bookingEvent struct {
	Event     string `json:"event"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type Booking interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Start(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	DailySummary(ctx context.Context, date string) (dto.DailySummaryResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	catalog   catalogService.Catalog
	therapist therapistService.Therapist
	customer  customerService.Customer
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(
	repo repository.Booking,
	catalog catalogService.Catalog,
	therapist therapistService.Therapist,
	customer customerService.Customer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Booking {
	return &serviceImpl{
		repo:      repo,
		catalog:   catalog,
		therapist: therapist,
		customer:  customer,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// Availability returns the offerable start times for a therapist, date and
// duration. The answer is a snapshot: the write path re-validates the slot
// inside a transaction, so a stale answer surfaces as a conflict on create.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.therapist.GetModel(ctx, req.TherapistID); err != nil {
		return res, err
	}

	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)

	occupying, err := s.repo.GetOccupyingForTherapist(ctx, req.TherapistID, dayStart, dayEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapist bookings")

		return res, fmt.Errorf("failed to get therapist bookings: %w", err)
	}

	candidates := s.fittingCandidates(date, req.DurationMin)
	slots := FilterAvailable(candidates, req.DurationMin, occupying)

	res.FromSlots(req.TherapistID, req.Date, req.DurationMin, slots)

	return res, nil
}

// Create runs the full intake: validate the slot, price the booking, attach
// the customer identity, then write with the transactional slot re-check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	startTime, err := timezone.Parse(constant.DateFormat, req.StartTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	therapist, err := s.therapist.GetModel(ctx, req.TherapistID)
	if err != nil {
		return res, err
	}

	if therapist.Status == therapistModel.StatusResigned {
		return res, failure.BadRequestFromString("therapist has resigned") // nolint:wrapcheck
	}

	if !s.onGrid(startTime, req.DurationMin) {
		return res, failure.BadRequestFromString("start time is not a valid slot within business hours") // nolint:wrapcheck
	}

	svc, err := s.catalog.GetModel(ctx, req.ServiceID)
	if err != nil {
		return res, err
	}

	originalPrice, err := BasePrice(svc, req.DurationMin)
	if err != nil {
		return res, err
	}

	discountType := model.DiscountType(req.DiscountType)
	if req.DiscountType == constant.Empty {
		discountType = model.DiscountNone
	}

	finalPrice, err := ApplyDiscount(originalPrice, discountType, req.DiscountValue)
	if err != nil {
		return res, err
	}

	if finalPrice < s.cfg.Shop.InsuranceMinimum {
		return res, failure.BadRequestFromString("final price is below the insured minimum") // nolint:wrapcheck
	}

	commission, shopRevenue := SplitRevenue(originalPrice, finalPrice, s.cfg.Shop.CommissionRate)

	if _, err = s.customer.Upsert(ctx, customerDto.UpsertCustomerRequest{
		Phone:           req.CustomerPhone,
		Name:            req.CustomerName,
		Channel:         req.Channel,
		LastServiceID:   req.ServiceID,
		LastTherapistID: req.TherapistID,
	}); err != nil {
		return res, err
	}

	booking := model.Booking{
		ID:                  uuid.NewString(),
		CustomerName:        req.CustomerName,
		CustomerPhone:       phone.Normalize(req.CustomerPhone),
		ServiceID:           req.ServiceID,
		TherapistID:         req.TherapistID,
		StartTime:           startTime,
		DurationMin:         req.DurationMin,
		Status:              model.StatusPending,
		OriginalPrice:       originalPrice,
		DiscountType:        discountType,
		DiscountValue:       req.DiscountValue,
		FinalPrice:          finalPrice,
		TherapistCommission: commission,
		ShopRevenue:         shopRevenue,
		Notes:               req.Notes,
		Channel:             req.Channel,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.InsertIfSlotFree(ctx, booking); err != nil {
		return res, err
	}

	s.invalidateLists(ctx)
	s.publish(ctx, booking.ID, eventBookingCreated, string(booking.Status))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getModel(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if _, err = s.getModel(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Start moves a pending booking to in_progress.
func (s *serviceImpl) Start(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.transition(ctx, id, model.StatusInProgress)

	return err
}

// Complete finishes a booking and applies the customer's visit counters.
func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.StatusDone)
	if err != nil {
		return err
	}

	if err = s.customer.RecordVisit(ctx, customerModel.Visit{
		Phone:       booking.CustomerPhone,
		Amount:      booking.FinalPrice,
		VisitAt:     timezone.Now(),
		ServiceID:   booking.ServiceID,
		TherapistID: booking.TherapistID,
		Channel:     booking.Channel,
	}); err != nil {
		log.Error().Err(err).Msg("failed to record customer visit")

		return err
	}

	return nil
}

// Cancel aborts any non-terminal booking and frees its slot.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.transition(ctx, id, model.StatusCancelled)

	return err
}

// Reopen is the one legal way back from done. It reverses the visit counters
// so a later completion does not double count.
func (s *serviceImpl) Reopen(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reopen")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getModel(ctx, id)
	if err != nil {
		return err
	}

	if !booking.Status.CanReopen() {
		return failure.BadRequestFromString(fmt.Sprintf("cannot reopen a booking in status %s", booking.Status)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusInProgress,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reopen booking")

		return fmt.Errorf("failed to reopen booking: %w", err)
	}

	if err = s.customer.ReverseVisit(ctx, booking.CustomerPhone, booking.FinalPrice); err != nil {
		log.Error().Err(err).Msg("failed to reverse customer visit")

		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, id, eventBookingStatusChanged, string(model.StatusInProgress))

	return nil
}

// DailySummary reports the day's bookings by status plus the revenue split
// over its completed bookings.
func (s *serviceImpl) DailySummary(ctx context.Context, date string) (res dto.DailySummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailySummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, dayFilter(day, day.AddDate(0, 0, 1)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for daily summary")

		return res, fmt.Errorf("failed to get bookings for daily summary: %w", err)
	}

	res.Date = date
	res.Currency = s.cfg.Shop.Currency
	res.TotalBookings = len(bookings)
	res.ByStatus = map[string]int{}

	for i := range bookings {
		res.ByStatus[string(bookings[i].Status)]++

		if bookings[i].Status == model.StatusDone {
			res.FinalRevenue += bookings[i].FinalPrice
			res.CommissionPaid += bookings[i].TherapistCommission
			res.ShopRevenue += bookings[i].ShopRevenue
		}
	}

	return res, nil
}

func (s *serviceImpl) transition(ctx context.Context, id string, target model.Status) (model.Booking, error) {
	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getModel(ctx, id)
	if err != nil {
		return booking, err
	}

	if !booking.Status.CanTransitionTo(target) {
		return booking, failure.BadRequestFromString(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, target)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        target,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = target

	s.invalidate(ctx, id)
	s.publish(ctx, id, eventBookingStatusChanged, string(target))

	return booking, nil
}

func (s *serviceImpl) getModel(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// fittingCandidates returns the grid starts whose full interval still fits
// before closing time.
func (s *serviceImpl) fittingCandidates(date time.Time, durationMin int) []time.Time {
	shop := s.cfg.Shop

	closeTime := time.Date(date.Year(), date.Month(), date.Day(), shop.CloseHour, 0, 0, 0, date.Location())

	candidates := SlotCandidates(date, shop.SlotGranularityMin, shop.OpenHour, shop.CloseHour)

	fitting := make([]time.Time, 0, len(candidates))
	for _, start := range candidates {
		if !start.Add(time.Duration(durationMin) * time.Minute).After(closeTime) {
			fitting = append(fitting, start)
		}
	}

	return fitting
}

func (s *serviceImpl) onGrid(startTime time.Time, durationMin int) bool {
	date := time.Date(startTime.Year(), startTime.Month(), startTime.Day(), 0, 0, 0, 0, startTime.Location())

	for _, candidate := range s.fittingCandidates(date, durationMin) {
		if candidate.Equal(startTime) {
			return true
		}
	}

	return false
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheReportPrefix)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheReportPrefix)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, bookingID, event, status string) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: bookingID,
			Value: bookingEvent{
				Event:     event,
				BookingID: bookingID,
				Status:    status,
			},
		}

		if err := s.publisher.Publish(c, message); err != nil {
			log.Error().Err(err).Msg("failed to publish booking event")
		}
	}()
}

func dayFilter(dayStart, dayEnd time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "day_start",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    dayStart,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_end",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorLess,
				Value:    dayEnd,
				Table:    model.TableName,
			},
		},
	}
}
