package service

import (
	"context"
	"fmt"

	"lotus/config"
	"lotus/infras/kafka"
	"lotus/infras/otel"
	bookingRepository "lotus/internal/domains/booking/repository"
	"lotus/internal/domains/customer/model"
	"lotus/internal/domains/customer/model/dto"
	"lotus/internal/domains/customer/repository"
	"lotus/shared"
	"lotus/shared/cache"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/logger"
	"lotus/shared/phone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
	cacheCountCustomer  = "customer:count"

	eventCustomerMerged = "customer.merged"
)

type mergedEvent struct {
	Event     string `json:"event"`
	FromPhone string `json:"from_phone"`
	ToPhone   string `json:"to_phone"`
}

// Customer resolves contact keys to exactly one identity record.
type Customer interface {
	Upsert(ctx context.Context, req dto.UpsertCustomerRequest) (dto.CustomerResponse, error)
	FindByPhone(ctx context.Context, rawPhone string) (dto.CustomerResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Merge(ctx context.Context, req dto.MergeCustomerRequest) error
	ChangeContactKey(ctx context.Context, currentPhone string, req dto.ChangeContactKeyRequest) error
	RecordVisit(ctx context.Context, visit model.Visit) error
	ReverseVisit(ctx context.Context, rawPhone string, amount int64) error
}

type serviceImpl struct {
	repo        repository.Customer
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	publisher   kafka.Publisher
}

func New(
	repo repository.Customer,
	bookingRepo bookingRepository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Customer {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		publisher:   publisher,
	}
}

// Upsert creates the identity record on first contact and overwrites only the
// identity fields on repeat contact. Visit counters belong to RecordVisit.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !phone.Valid(req.Phone) {
		return res, failure.BadRequestFromString("invalid phone number") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	customer := req.ToModel(user)

	if err = s.repo.UpsertIdentity(ctx, customer); err != nil {
		return res, err
	}

	stored, err := s.getByNormalizedPhone(ctx, customer.Phone)
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, customer.Phone)

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) FindByPhone(ctx context.Context, rawPhone string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	normalized := phone.Normalize(rawPhone)
	cacheKey := shared.BuildCacheKey(cacheGetCustomer, normalized)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.getByNormalizedPhone(ctx, normalized)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer count to cache")
		}
	}()

	return res, nil
}

// Merge moves every booking attributed to the source phone onto the target
// identity, then deletes the source record, all in one transaction. The
// target's visit counters are deliberately left untouched.
func (s *serviceImpl) Merge(ctx context.Context, req dto.MergeCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Merge")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromPhone := phone.Normalize(req.FromPhone)
	toPhone := phone.Normalize(req.ToPhone)

	if fromPhone == toPhone {
		return failure.BadRequestFromString("cannot merge a customer into itself") // nolint:wrapcheck
	}

	if _, err = s.getByNormalizedPhone(ctx, fromPhone); err != nil {
		return err
	}

	target, err := s.getByNormalizedPhone(ctx, toPhone)
	if err != nil {
		return err
	}

	if err = s.mergeTx(ctx, fromPhone, toPhone, target.Name); err != nil {
		return err
	}

	s.invalidate(ctx, fromPhone)
	s.invalidate(ctx, toPhone)

	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key: toPhone,
			Value: mergedEvent{
				Event:     eventCustomerMerged,
				FromPhone: fromPhone,
				ToPhone:   toPhone,
			},
		}

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish customer merged event")
		}
	}()

	return nil
}

// ChangeContactKey re-points a customer's identity to a new phone number. If
// the new number already belongs to another customer this degenerates into a
// merge so that customer's history is preserved, not overwritten.
func (s *serviceImpl) ChangeContactKey(ctx context.Context, currentPhone string, req dto.ChangeContactKeyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeContactKey")
	defer scope.End()
	defer scope.TraceIfError(err)

	oldPhone := phone.Normalize(currentPhone)
	newPhone := phone.Normalize(req.NewPhone)

	if !phone.Valid(newPhone) {
		return failure.BadRequestFromString("invalid phone number") // nolint:wrapcheck
	}

	if oldPhone == newPhone {
		return failure.BadRequestFromString("new phone number is the same as the current one") // nolint:wrapcheck
	}

	current, err := s.getByNormalizedPhone(ctx, oldPhone)
	if err != nil {
		return err
	}

	existing, err := s.repo.Get(ctx, shared.FilterByID(newPhone, model.FieldPhone, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check target customer")

		return fmt.Errorf("failed to check target customer: %w", err)
	}

	if existing.Phone != constant.Empty {
		return s.Merge(ctx, dto.MergeCustomerRequest{FromPhone: oldPhone, ToPhone: newPhone})
	}

	// Fresh target: recreate the identity under the new key, then move the
	// history across and drop the old record.
	recreated := current
	recreated.Phone = newPhone

	if err = s.repo.UpsertIdentity(ctx, recreated); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldTotalVisits: current.TotalVisits,
		model.FieldTotalSpent:  current.TotalSpent,
		model.FieldFirstVisit:  current.FirstVisit,
		model.FieldLastVisit:   current.LastVisit,
	}, shared.FilterByID(newPhone, model.FieldPhone, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to carry over customer counters")

		return fmt.Errorf("failed to carry over customer counters: %w", err)
	}

	if err = s.mergeTx(ctx, oldPhone, newPhone, current.Name); err != nil {
		return err
	}

	s.invalidate(ctx, oldPhone)
	s.invalidate(ctx, newPhone)

	return nil
}

// RecordVisit applies the booking-completion counter deltas in their own
// transaction. Called by the booking status path, not by any handler.
func (s *serviceImpl) RecordVisit(ctx context.Context, visit model.Visit) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordVisit")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.RecordVisitTx(ctx, sqltx, visit); err != nil {
		if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
			logger.ErrorWithStack(rollbackErr)
		}

		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit visit record: %w", err)
	}

	s.invalidate(ctx, visit.Phone)

	return nil
}

// ReverseVisit undoes one completion's counter deltas. Called by the booking
// reopen path.
func (s *serviceImpl) ReverseVisit(ctx context.Context, rawPhone string, amount int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReverseVisit")
	defer scope.End()
	defer scope.TraceIfError(err)

	normalized := phone.Normalize(rawPhone)

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.ReverseVisitTx(ctx, sqltx, normalized, amount); err != nil {
		if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
			logger.ErrorWithStack(rollbackErr)
		}

		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit visit reversal: %w", err)
	}

	s.invalidate(ctx, normalized)

	return nil
}

func (s *serviceImpl) mergeTx(ctx context.Context, fromPhone, toPhone, toName string) error {
	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	rollback := func() {
		if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
			logger.ErrorWithStack(rollbackErr)
		}
	}

	if err = s.bookingRepo.ReassignCustomerTx(ctx, sqltx, fromPhone, toPhone, toName); err != nil {
		rollback()

		return err
	}

	if err = s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(fromPhone, model.FieldPhone, model.TableName)); err != nil {
		rollback()

		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit customer merge: %w", err)
	}

	return nil
}

func (s *serviceImpl) getByNormalizedPhone(ctx context.Context, normalized string) (model.Customer, error) {
	customer, err := s.repo.Get(ctx, shared.FilterByID(normalized, model.FieldPhone, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return customer, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.Phone == constant.Empty {
		return customer, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	return customer, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, phoneKey string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, phoneKey)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()
}
