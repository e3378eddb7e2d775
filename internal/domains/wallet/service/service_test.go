package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"handy/config"
	"handy/infras/otel/mocks"
	providerMocks "handy/internal/domains/provider/mocks"
	providerModel "handy/internal/domains/provider/model"
	providerRepo "handy/internal/domains/provider/repository"
	walletMocks "handy/internal/domains/wallet/mocks"
	"handy/internal/domains/wallet/model"
	"handy/internal/domains/wallet/model/dto"
	"handy/internal/domains/wallet/repository"
	"handy/internal/domains/wallet/service"
	cacheMocks "handy/shared/cache/mocks"
	"handy/shared/constant"
	"handy/shared/failure"
)

func TestWalletService_RequestPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := walletMocks.NewMockWallet(ctrl)
	mockProviders := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockWallet, mockProviders, cfg, mockCache, mockOtel)

	provider := providerModel.Provider{ID: "provider-1", UserID: "user-1", Credits: 50}

	tests := []struct {
		name       string
		req        dto.RequestPayoutRequest
		setupMock  func()
		wantErr    bool
		wantReason string
	}{
		{
			name: "successful request",
			req:  dto.RequestPayoutRequest{Amount: 100},
			setupMock: func() {
				mockProviders.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
				mockWallet.EXPECT().
					CreatePayoutRequest(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "amount exceeds available balance",
			req:  dto.RequestPayoutRequest{Amount: 10000},
			setupMock: func() {
				mockProviders.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
				mockWallet.EXPECT().
					CreatePayoutRequest(gomock.Any(), gomock.Any()).
					Return(repository.ErrInsufficientBalance)
			},
			wantErr:    true,
			wantReason: failure.ReasonInsufficientBalance,
		},
		{
			name: "no provider profile",
			req:  dto.RequestPayoutRequest{Amount: 100},
			setupMock: func() {
				mockProviders.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(providerModel.Provider{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			res, err := svc.RequestPayout(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, failure.GetReason(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "provider-1", res.ProviderID)
			assert.Equal(t, constant.PayoutStatusPending, res.Status)
		})
	}
}

func TestWalletService_ReviewPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := walletMocks.NewMockWallet(ctrl)
	mockProviders := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockWallet, mockProviders, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		payout    model.PayoutRequest
		setupMock func(payout model.PayoutRequest)
		wantErr   bool
	}{
		{
			name:   "pending payout approved",
			payout: model.PayoutRequest{ID: "payout-1", Status: constant.PayoutStatusPending},
			setupMock: func(payout model.PayoutRequest) {
				mockWallet.EXPECT().
					GetPayout(gomock.Any(), "payout-1").
					Return(payout, nil)
				mockWallet.EXPECT().
					UpdatePayoutStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "already reviewed payout rejected",
			payout: model.PayoutRequest{ID: "payout-1", Status: constant.PayoutStatusApproved},
			setupMock: func(payout model.PayoutRequest) {
				mockWallet.EXPECT().
					GetPayout(gomock.Any(), "payout-1").
					Return(payout, nil)
			},
			wantErr: true,
		},
		{
			name:   "unknown payout",
			payout: model.PayoutRequest{},
			setupMock: func(payout model.PayoutRequest) {
				mockWallet.EXPECT().
					GetPayout(gomock.Any(), "payout-1").
					Return(payout, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(tt.payout)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.ReviewPayout(ctx, "payout-1", dto.ReviewPayoutRequest{Status: constant.PayoutStatusApproved})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWalletService_RecordTopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := walletMocks.NewMockWallet(ctrl)
	mockProviders := providerMocks.NewMockProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockWallet, mockProviders, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "top-up posted",
			setupMock: func() {
				mockProviders.EXPECT().
					TopUpCredits(gomock.Any(), "provider-1", 100, constant.CreditTypeTopUp, "ref-1", "system").
					Return(nil)
			},
		},
		{
			name: "unknown provider",
			setupMock: func() {
				mockProviders.EXPECT().
					TopUpCredits(gomock.Any(), "provider-1", 100, constant.CreditTypeTopUp, "ref-1", "system").
					Return(providerRepo.ErrProviderNotFound)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockProviders.EXPECT().
					TopUpCredits(gomock.Any(), "provider-1", 100, constant.CreditTypeTopUp, "ref-1", "system").
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.RecordTopUp(context.Background(), dto.TopUpRequest{
				ProviderID: "provider-1",
				Amount:     100,
				Reference:  "ref-1",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
