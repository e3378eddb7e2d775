package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"handy/config"
	"handy/infras/otel/mocks"
	providerMocks "handy/internal/domains/provider/mocks"
	"handy/internal/domains/provider/model"
	"handy/internal/domains/provider/model/dto"
	"handy/internal/domains/provider/service"
	cacheMocks "handy/shared/cache/mocks"
	"handy/shared/constant"
)

func TestProviderService_GetSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := providerMocks.NewMockProvider(ctrl)
	mockSchedule := providerMocks.NewMockSchedule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockSchedule, cfg, mockCache, mockOtel)

	provider := model.Provider{ID: "provider-1", UserID: "user-1"}

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantEntries int
	}{
		{
			name: "stored schedule returned as is",
			setupMock: func() {
				mockRepo.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockSchedule.EXPECT().
					GetOrDefault(gomock.Any(), "provider-1").
					Return([]model.ProviderSchedule{
						{ProviderID: "provider-1", Weekday: 1, StartTime: "08:00", EndTime: "12:00", Active: true},
					}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantEntries: 1,
		},
		{
			name: "default week when nothing stored",
			setupMock: func() {
				mockRepo.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockSchedule.EXPECT().
					GetOrDefault(gomock.Any(), "provider-1").
					Return(model.DefaultSchedule("provider-1"), nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantEntries: 7,
		},
		{
			name: "provider profile missing",
			setupMock: func() {
				mockRepo.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(model.Provider{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			res, err := svc.GetSchedule(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Entries, tt.wantEntries)
		})
	}
}

func TestProviderService_UpdateSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := providerMocks.NewMockProvider(ctrl)
	mockSchedule := providerMocks.NewMockSchedule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockSchedule, cfg, mockCache, mockOtel)

	provider := model.Provider{ID: "provider-1", UserID: "user-1"}

	tests := []struct {
		name      string
		req       dto.UpdateScheduleRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful replace",
			req: dto.UpdateScheduleRequest{
				Entries: []dto.ScheduleEntry{
					{Weekday: 1, StartTime: "09:00", EndTime: "17:00", Active: true},
					{Weekday: 2, StartTime: "10:00", EndTime: "16:00", Active: true},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
				mockSchedule.EXPECT().
					Replace(gomock.Any(), "provider-1", gomock.Len(2)).
					Return(nil)
				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate weekday rejected",
			req: dto.UpdateScheduleRequest{
				Entries: []dto.ScheduleEntry{
					{Weekday: 1, StartTime: "09:00", EndTime: "17:00", Active: true},
					{Weekday: 1, StartTime: "10:00", EndTime: "16:00", Active: true},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
			},
			wantErr: true,
		},
		{
			name: "start not before end rejected",
			req: dto.UpdateScheduleRequest{
				Entries: []dto.ScheduleEntry{
					{Weekday: 1, StartTime: "17:00", EndTime: "09:00", Active: true},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindByUserID(gomock.Any(), "user-1").
					Return(provider, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			err := svc.UpdateSchedule(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultSchedule(t *testing.T) {
	schedules := model.DefaultSchedule("provider-1")

	assert.Len(t, schedules, 7)

	for _, schedule := range schedules {
		day := time.Weekday(schedule.Weekday)

		if day == time.Saturday || day == time.Sunday {
			assert.False(t, schedule.Active, "weekend days should be inactive")
		} else {
			assert.True(t, schedule.Active, "weekdays should be active")
			assert.Equal(t, "09:00", schedule.StartTime)
			assert.Equal(t, "17:00", schedule.EndTime)
		}
	}
}
