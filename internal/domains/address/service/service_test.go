package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"handy/config"
	"handy/infras/otel/mocks"
	addressMocks "handy/internal/domains/address/mocks"
	"handy/internal/domains/address/model"
	"handy/internal/domains/address/model/dto"
	"handy/internal/domains/address/service"
	cacheMocks "handy/shared/cache/mocks"
	"handy/shared/constant"
	"handy/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func newAddressService(ctrl *gomock.Controller) (service.Address, *addressMocks.MockAddress, *cacheMocks.MockRedisCache) {
	mockRepo := addressMocks.NewMockAddress(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestAddressService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newAddressService(ctrl)

	t.Run("creates an address for the caller", func(t *testing.T) {
		lat, lng := -6.2, 106.8

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, address model.Address) error {
				assert.Equal(t, "user-1", address.UserID)
				assert.True(t, address.Latitude.Valid)
				assert.Equal(t, -6.2, address.Latitude.Float64)

				return nil
			})

		res, err := svc.Create(userContext("user-1"), dto.CreateAddressRequest{
			Label:     "Home",
			Line1:     "Jl. Sudirman 1",
			City:      "Jakarta",
			Latitude:  &lat,
			Longitude: &lng,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Home", res.Label)
		assert.Equal(t, "user-1", res.UserID)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		_, err := svc.Create(userContext("user-1"), dto.CreateAddressRequest{
			Label: "Home",
			Line1: "Jl. Sudirman 1",
			City:  "Jakarta",
		})

		assert.Error(t, err)
	})
}

func TestAddressService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newAddressService(ctrl)

	addresses := []model.Address{
		{ID: "address-1", UserID: "user-1", Label: "Home"},
		{ID: "address-2", UserID: "user-1", Label: "Office"},
	}

	t.Run("lists the caller's addresses", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(addresses, nil)

		res, err := svc.ListMine(userContext("user-1"))

		assert.NoError(t, err)
		assert.Len(t, res.Addresses, 2)
	})

	t.Run("serves from cache on hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetAddressesResponse)
				assert.True(t, ok)
				res.FromModels(addresses)

				return nil
			})

		res, err := svc.ListMine(userContext("user-1"))

		assert.NoError(t, err)
		assert.Len(t, res.Addresses, 2)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newAddressService(ctrl)

	owned := model.Address{ID: "address-1", UserID: "user-1", Label: "Home"}

	t.Run("updates an owned address", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(owned, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Apartment", fields["label"])

				return nil
			})

		err := svc.Update(userContext("user-1"), dto.UpdateAddressRequest{Label: "Apartment"}, "address-1")

		assert.NoError(t, err)
	})

	t.Run("empty request is rejected", func(t *testing.T) {
		err := svc.Update(userContext("user-1"), dto.UpdateAddressRequest{}, "address-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonBadRequest, failure.GetReason(err))
	})

	t.Run("missing address returns not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Address{}, nil)

		err := svc.Update(userContext("user-1"), dto.UpdateAddressRequest{Label: "Apartment"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})

	t.Run("another user's address is forbidden", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(owned, nil)

		err := svc.Update(userContext("user-2"), dto.UpdateAddressRequest{Label: "Apartment"}, "address-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newAddressService(ctrl)

	owned := model.Address{ID: "address-1", UserID: "user-1", Label: "Home"}

	t.Run("deletes an owned address", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(owned, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(userContext("user-1"), "address-1")

		assert.NoError(t, err)
	})

	t.Run("another user's address is forbidden", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(owned, nil)

		err := svc.Delete(userContext("user-2"), "address-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})
}
