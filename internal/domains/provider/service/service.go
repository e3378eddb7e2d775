package service

import (
	"context"
	"fmt"
	"handy/config"
	"handy/infras/otel"
	"handy/internal/domains/provider/model"
	"handy/internal/domains/provider/model/dto"
	"handy/internal/domains/provider/repository"
	"handy/shared"
	"handy/shared/cache"
	"handy/shared/constant"
	"handy/shared/failure"
	gModel "handy/shared/model"
	"handy/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProvider = "provider:get"
	cacheGetSchedule = "provider:schedule"
)

type Provider interface {
	GetProfile(ctx context.Context) (dto.ProviderResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProviderRequest) error
	GetSchedule(ctx context.Context) (dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, req dto.UpdateScheduleRequest) error
}

type serviceImpl struct {
	repo         repository.Provider
	scheduleRepo repository.Schedule
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Provider, scheduleRepo repository.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Provider {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context) (res dto.ProviderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.fetchByUser(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromModel(provider)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProviderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateProviderRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.fetchByUser(ctx, user)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(provider.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update provider profile")

		return fmt.Errorf("failed to update provider profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProvider, provider.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete provider from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) GetSchedule(ctx context.Context) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.GetSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.fetchByUser(ctx, user)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetSchedule, provider.ID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule")

		return res, nil
	}

	schedules, err := s.scheduleRepo.GetOrDefault(ctx, provider.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return res, fmt.Errorf("failed to get schedule: %w", err)
	}

	res.FromModels(schedules)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateSchedule(ctx context.Context, req dto.UpdateScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.UpdateSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.fetchByUser(ctx, user)
	if err != nil {
		return err
	}

	seen := map[int]bool{}
	for _, entry := range req.Entries {
		if seen[entry.Weekday] {
			return failure.BadRequestFromString("duplicate weekday in schedule") // nolint:wrapcheck
		}

		seen[entry.Weekday] = true

		start, parseErr := timezone.ParseClock(entry.StartTime)
		if parseErr != nil {
			return failure.BadRequestFromString("invalid start time") // nolint:wrapcheck
		}

		end, parseErr := timezone.ParseClock(entry.EndTime)
		if parseErr != nil {
			return failure.BadRequestFromString("invalid end time") // nolint:wrapcheck
		}

		if start >= end {
			return failure.BadRequestFromString("start time must precede end time") // nolint:wrapcheck
		}
	}

	schedules := make([]model.ProviderSchedule, len(req.Entries))
	for i, entry := range req.Entries {
		schedules[i] = model.ProviderSchedule{
			ID:         uuid.NewString(),
			ProviderID: provider.ID,
			Weekday:    entry.Weekday,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
			Active:     entry.Active,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	if err = s.scheduleRepo.Replace(ctx, provider.ID, schedules); err != nil {
		log.Error().Err(err).Msg("failed to update schedule")

		return fmt.Errorf("failed to update schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSchedule, provider.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete schedule from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) fetchByUser(ctx context.Context, user string) (model.Provider, error) {
	provider, err := s.repo.FindByUserID(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return provider, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return provider, failure.NotFound("provider profile not found") // nolint:wrapcheck
	}

	return provider, nil
}
