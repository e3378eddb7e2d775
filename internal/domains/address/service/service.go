package service

import (
	"context"
	"fmt"
	"handy/config"
	"handy/infras/otel"
	"handy/internal/domains/address/model"
	"handy/internal/domains/address/model/dto"
	"handy/internal/domains/address/repository"
	"handy/shared"
	"handy/shared/cache"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAddress = "address:gets"
)

type Address interface {
	Create(ctx context.Context, req dto.CreateAddressRequest) (dto.AddressResponse, error)
	ListMine(ctx context.Context) (dto.GetAddressesResponse, error)
	Update(ctx context.Context, req dto.UpdateAddressRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Address
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Address, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Address {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAddressRequest) (res dto.AddressResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	address := req.ToModel(user)

	if err = s.repo.Insert(ctx, address); err != nil {
		log.Error().Err(err).Msg("failed to create address")

		return res, fmt.Errorf("failed to create address: %w", err)
	}

	res.FromModel(address)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAddress)
	}()

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res dto.GetAddressesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cacheKey := shared.BuildCacheKey(cacheGetAllAddress, user)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for addresses")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(user, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get addresses")

		return res, fmt.Errorf("failed to get addresses: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save addresses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAddressRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAddressRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	address, err := s.fetchOwned(ctx, id, user)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(address.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update address")

		return fmt.Errorf("failed to update address: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAddress)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	address, err := s.fetchOwned(ctx, id, user)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(address.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete address")

		return fmt.Errorf("failed to delete address: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAddress)
	}()

	return nil
}

func (s *serviceImpl) fetchOwned(ctx context.Context, id, user string) (model.Address, error) {
	address, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get address")

		return address, fmt.Errorf("failed to get address: %w", err)
	}

	if address.ID == constant.Empty {
		return address, failure.NotFound("address not found") // nolint:wrapcheck
	}

	if address.UserID != user {
		return address, failure.Forbidden("address belongs to another user") // nolint:wrapcheck
	}

	return address, nil
}
