package service

import (
	"context"
	"fmt"

	"lotus/config"
	"lotus/infras/otel"
	"lotus/internal/domains/therapist/model"
	"lotus/internal/domains/therapist/model/dto"
	"lotus/internal/domains/therapist/repository"
	"lotus/shared"
	"lotus/shared/cache"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTherapist    = "therapist:get"
	cacheGetAllTherapist = "therapist:gets"
	cacheCountTherapist  = "therapist:count"
)

type Therapist interface {
	Create(ctx context.Context, req dto.CreateTherapistRequest) (dto.TherapistResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTherapistsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TherapistResponse, error)
	GetModel(ctx context.Context, id string) (model.Therapist, error)
	Update(ctx context.Context, req dto.UpdateTherapistRequest, id string) error
	SetDayOff(ctx context.Context, id string, req dto.SetDayOffRequest) error
	Activate(ctx context.Context, id string) error
	Resign(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Therapist
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Therapist, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Therapist {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTherapistRequest) (res dto.TherapistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	therapist, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse therapist start date")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, therapist); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTherapist)
		shared.InvalidateCaches(c, s.cache, cacheCountTherapist)
	}()

	res.FromModel(therapist)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTherapistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTherapist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for therapists")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count therapists")

		return res, fmt.Errorf("failed to count therapists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapists")

		return res, fmt.Errorf("failed to get therapists: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save therapists to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTherapist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for therapist count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count therapists")

		return res, fmt.Errorf("failed to count therapists: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save therapist count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TherapistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTherapist, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for therapist")

		return res, nil
	}

	therapist, err := s.GetModel(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(therapist)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save therapist to cache")
		}
	}()

	return res, nil
}

// GetModel returns the raw therapist record for the booking flow.
func (s *serviceImpl) GetModel(ctx context.Context, id string) (res model.Therapist, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	therapist, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapist")

		return res, fmt.Errorf("failed to get therapist: %w", err)
	}

	if therapist.ID == constant.Empty {
		return res, failure.NotFound("therapist not found") // nolint:wrapcheck
	}

	return therapist, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTherapistRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if _, err = s.GetModel(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update therapist")

		return fmt.Errorf("failed to update therapist: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// SetDayOff moves an active therapist to day_off for the given date.
func (s *serviceImpl) SetDayOff(ctx context.Context, id string, req dto.SetDayOffRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDayOff")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	return s.transition(ctx, id, model.StatusDayOff, map[string]any{
		model.FieldDayOffDate: date,
	})
}

// Activate brings a therapist back from day_off.
func (s *serviceImpl) Activate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activate")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusActive, map[string]any{
		model.FieldDayOffDate: nil,
	})
}

// Resign is terminal: it stamps the end date and blocks any further moves.
func (s *serviceImpl) Resign(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resign")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusResigned, map[string]any{
		model.FieldEndDate: timezone.Now(),
	})
}

func (s *serviceImpl) transition(ctx context.Context, id string, target model.Status, extraFields map[string]any) error {
	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	therapist, err := s.GetModel(ctx, id)
	if err != nil {
		return err
	}

	if !therapist.Status.CanTransitionTo(target) {
		log.Error().
			Str("from", string(therapist.Status)).
			Str("to", string(target)).
			Msg("illegal therapist status transition")

		return failure.BadRequestFromString(fmt.Sprintf("cannot transition therapist from %s to %s", therapist.Status, target)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        target,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
	for column, value := range extraFields {
		fields[column] = value
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update therapist status")

		return fmt.Errorf("failed to update therapist status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTherapist, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete therapist cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTherapist)
		shared.InvalidateCaches(c, s.cache, cacheCountTherapist)
	}()
}
