package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"handy/config"
	"handy/infras/otel/mocks"
	catalogMocks "handy/internal/domains/catalog/mocks"
	"handy/internal/domains/catalog/model"
	"handy/internal/domains/catalog/model/dto"
	"handy/internal/domains/catalog/service"
	providerMocks "handy/internal/domains/provider/mocks"
	providerModel "handy/internal/domains/provider/model"
	cacheMocks "handy/shared/cache/mocks"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func newCatalogService(ctrl *gomock.Controller) (service.Catalog, *catalogMocks.MockCatalog, *providerMocks.MockProvider, *cacheMocks.MockRedisCache) {
	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockProviders := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockProviders, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockProviders, mockCache
}

func TestCatalogService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newCatalogService(ctrl)

	cleaning := model.Service{
		ID:        "service-1",
		Name:      "Deep Cleaning",
		Category:  "cleaning",
		BasePrice: 100,
		Active:    true,
	}

	t.Run("returns the service", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cleaning, nil)

		res, err := svc.Get(context.Background(), "service-1")

		assert.NoError(t, err)
		assert.Equal(t, "Deep Cleaning", res.Name)
		assert.Equal(t, float64(100), res.BasePrice)
	})

	t.Run("serves from cache on hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.ServiceResponse)
				assert.True(t, ok)
				res.FromModel(cleaning)

				return nil
			})

		res, err := svc.Get(context.Background(), "service-1")

		assert.NoError(t, err)
		assert.Equal(t, "Deep Cleaning", res.Name)
	})

	t.Run("unknown service returns not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{}, errors.New("db down"))

		_, err := svc.Get(context.Background(), "service-1")

		assert.Error(t, err)
	})
}

func TestCatalogService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newCatalogService(ctrl)

	services := []model.Service{
		{ID: "service-1", Name: "Deep Cleaning", BasePrice: 100, Active: true},
		{ID: "service-2", Name: "Plumbing", BasePrice: 150, Active: true},
	}

	t.Run("lists services with totals", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(12, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(services, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Services, 2)
		assert.Equal(t, 12, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
	})
}

func TestCatalogService_Offer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockProviders, _ := newCatalogService(ctrl)

	provider := providerModel.Provider{ID: "provider-1", UserID: "user-1"}
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	t.Run("offers a service with a custom price", func(t *testing.T) {
		price := 80.0

		mockProviders.EXPECT().
			FindByUserID(gomock.Any(), "user-1").
			Return(provider, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			UpsertProviderService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, offer model.ProviderService) error {
				assert.Equal(t, "provider-1", offer.ProviderID)
				assert.Equal(t, "service-1", offer.ServiceID)
				assert.True(t, offer.CustomPrice.Valid)
				assert.Equal(t, 80.0, offer.CustomPrice.Float64)

				return nil
			})

		err := svc.Offer(ctx, dto.OfferServiceRequest{ServiceID: "service-1", CustomPrice: &price})

		assert.NoError(t, err)
	})

	t.Run("offers a service at the base price", func(t *testing.T) {
		mockProviders.EXPECT().
			FindByUserID(gomock.Any(), "user-1").
			Return(provider, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			UpsertProviderService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, offer model.ProviderService) error {
				assert.False(t, offer.CustomPrice.Valid)

				return nil
			})

		err := svc.Offer(ctx, dto.OfferServiceRequest{ServiceID: "service-1"})

		assert.NoError(t, err)
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		mockProviders.EXPECT().
			FindByUserID(gomock.Any(), "user-1").
			Return(provider, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Offer(ctx, dto.OfferServiceRequest{ServiceID: "missing"})

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonInvalidService, failure.GetReason(err))
	})

	t.Run("missing provider profile returns not found", func(t *testing.T) {
		mockProviders.EXPECT().
			FindByUserID(gomock.Any(), "user-1").
			Return(providerModel.Provider{}, nil)

		err := svc.Offer(ctx, dto.OfferServiceRequest{ServiceID: "service-1"})

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})
}
