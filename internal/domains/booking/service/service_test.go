package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"handy/config"
	"handy/infras/otel/mocks"
	addressMocks "handy/internal/domains/address/mocks"
	addressModel "handy/internal/domains/address/model"
	bookingMocks "handy/internal/domains/booking/mocks"
	"handy/internal/domains/booking/model"
	"handy/internal/domains/booking/model/dto"
	"handy/internal/domains/booking/service"
	catalogMocks "handy/internal/domains/catalog/mocks"
	catalogModel "handy/internal/domains/catalog/model"
	notifierMocks "handy/internal/domains/notifier/mocks"
	providerMocks "handy/internal/domains/provider/mocks"
	providerModel "handy/internal/domains/provider/model"
	providerRepo "handy/internal/domains/provider/repository"
	walletMocks "handy/internal/domains/wallet/mocks"
	walletModel "handy/internal/domains/wallet/model"
	cacheMocks "handy/shared/cache/mocks"
	"handy/shared/constant"
	"handy/shared/failure"
	"handy/shared/timezone"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	catalog   *catalogMocks.MockCatalog
	addresses *addressMocks.MockAddress
	providers *providerMocks.MockProvider
	schedules *providerMocks.MockSchedule
	wallet    *walletMocks.MockWallet
	notifier  *notifierMocks.MockNotifier
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		catalog:   catalogMocks.NewMockCatalog(ctrl),
		addresses: addressMocks.NewMockAddress(ctrl),
		providers: providerMocks.NewMockProvider(ctrl),
		schedules: providerMocks.NewMockSchedule(ctrl),
		wallet:    walletMocks.NewMockWallet(ctrl),
		notifier:  notifierMocks.NewMockNotifier(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.JobFeeCredits = 10
	cfg.Booking.JobRadiusKm = 5
	cfg.Booking.OperatingStartHour = 6
	cfg.Booking.OperatingEndHour = 23

	svc := service.New(m.repo, m.catalog, m.addresses, m.providers, m.schedules, m.wallet, m.notifier, cfg, m.cache, mocks.NewOtel())

	// Events and cache invalidation run on detached goroutines; the test
	// must not depend on them having fired.
	m.notifier.EXPECT().JobAvailable(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.notifier.EXPECT().JobTaken(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.notifier.EXPECT().BookingStatusChanged(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, m
}

func customerContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCustomer)
}

func providerContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleProvider)
}

// localTime builds a time on the application wall clock, so operating-window
// and schedule assertions do not depend on the host timezone.
func localTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, timezone.GetLocation())
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	ctx := customerContext("user-1")

	// Tuesday, inside the default 09:00-17:00 schedule.
	scheduledAt := localTime(2026, time.September, 1, 10, 0)

	address := addressModel.Address{
		ID:        "addr-1",
		UserID:    "user-1",
		Latitude:  sql.NullFloat64{Valid: true, Float64: -6.2},
		Longitude: sql.NullFloat64{Valid: true, Float64: 106.8},
	}

	t.Run("custom price wins over base price", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ProviderID:  "provider-1",
			ScheduledAt: scheduledAt.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 2}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(providerModel.Provider{ID: "provider-1", VerificationStatus: constant.VerificationVerified}, nil)
		m.repo.EXPECT().HasCompletedRelation(gomock.Any(), "user-1", "provider-1").Return(true, nil)
		m.schedules.EXPECT().GetOrDefault(gomock.Any(), "provider-1").
			Return(providerModel.DefaultSchedule("provider-1"), nil)
		m.catalog.EXPECT().ResolvePrices(gomock.Any(), []string{"svc-1"}, "provider-1").
			Return(map[string]catalogModel.ResolvedPrice{
				"svc-1": {
					ServiceID:   "svc-1",
					BasePrice:   100,
					CustomPrice: sql.NullFloat64{Valid: true, Float64: 80},
				},
			}, nil)
		m.repo.EXPECT().CreateWithServices(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, lines []model.BookingService) error {
				assert.Equal(t, float64(160), booking.TotalPrice)
				assert.Equal(t, "provider-1", booking.ProviderID.String)
				assert.Equal(t, constant.BookingStatusPending, booking.Status)
				assert.Len(t, lines, 1)
				assert.Equal(t, float64(80), lines[0].Price)

				return nil
			})

		res, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, float64(160), res.TotalPrice)
	})

	t.Run("base price used without a custom offer", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ScheduledAt: scheduledAt.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 3}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.catalog.EXPECT().ResolvePrices(gomock.Any(), []string{"svc-1"}, "").
			Return(map[string]catalogModel.ResolvedPrice{
				"svc-1": {ServiceID: "svc-1", BasePrice: 100},
			}, nil)
		m.repo.EXPECT().CreateWithServices(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ []model.BookingService) error {
				assert.Equal(t, float64(300), booking.TotalPrice)
				assert.False(t, booking.ProviderID.Valid)

				return nil
			})

		_, err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("out of hours is rejected on both edges", func(t *testing.T) {
		for _, at := range []time.Time{
			localTime(2026, time.September, 1, 5, 59),
			localTime(2026, time.September, 1, 23, 0),
		} {
			req := dto.CreateBookingRequest{
				AddressID:   "addr-1",
				ScheduledAt: at.Format(constant.DateFormat),
				Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 1}},
			}

			_, err := svc.Create(ctx, req)

			assert.Error(t, err)
			assert.Equal(t, failure.ReasonOutOfHours, failure.GetReason(err))
		}
	})

	t.Run("opening minute is accepted", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ScheduledAt: localTime(2026, time.September, 1, 6, 0).Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 1}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.catalog.EXPECT().ResolvePrices(gomock.Any(), gomock.Any(), "").
			Return(map[string]catalogModel.ResolvedPrice{
				"svc-1": {ServiceID: "svc-1", BasePrice: 50},
			}, nil)
		m.repo.EXPECT().CreateWithServices(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("unknown service id is rejected", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ScheduledAt: scheduledAt.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-ghost", Quantity: 1}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.catalog.EXPECT().ResolvePrices(gomock.Any(), []string{"svc-ghost"}, "").
			Return(map[string]catalogModel.ResolvedPrice{}, nil)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonInvalidService, failure.GetReason(err))
	})

	t.Run("direct booking requires a completed history", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ProviderID:  "provider-1",
			ScheduledAt: scheduledAt.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 1}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(providerModel.Provider{ID: "provider-1", VerificationStatus: constant.VerificationVerified}, nil)
		m.repo.EXPECT().HasCompletedRelation(gomock.Any(), "user-1", "provider-1").Return(false, nil)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNoRelation, failure.GetReason(err))
	})

	t.Run("unverified direct provider is rejected", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ProviderID:  "provider-1",
			ScheduledAt: scheduledAt.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 1}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(providerModel.Provider{ID: "provider-1", VerificationStatus: constant.VerificationPending}, nil)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonProviderUnavailable, failure.GetReason(err))
	})

	t.Run("direct booking outside provider working hours", func(t *testing.T) {
		// Sunday is inactive on the default week.
		sunday := localTime(2026, time.September, 6, 10, 0)

		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ProviderID:  "provider-1",
			ScheduledAt: sunday.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 1}},
		}

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(address, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(providerModel.Provider{ID: "provider-1", VerificationStatus: constant.VerificationVerified}, nil)
		m.repo.EXPECT().HasCompletedRelation(gomock.Any(), "user-1", "provider-1").Return(true, nil)
		m.schedules.EXPECT().GetOrDefault(gomock.Any(), "provider-1").
			Return(providerModel.DefaultSchedule("provider-1"), nil)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonProviderUnavailable, failure.GetReason(err))
	})

	t.Run("address of another user is forbidden", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			AddressID:   "addr-1",
			ScheduledAt: scheduledAt.Format(constant.DateFormat),
			Services:    []dto.BookingLine{{ServiceID: "svc-1", Quantity: 1}},
		}

		other := address
		other.UserID = "user-2"

		m.addresses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})
}

func TestBookingService_AvailableJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	ctx := providerContext("user-p")

	provider := providerModel.Provider{
		ID:                 "provider-1",
		UserID:             "user-p",
		VerificationStatus: constant.VerificationVerified,
	}

	location := addressModel.Address{
		ID:        "addr-p",
		UserID:    "user-p",
		Latitude:  sql.NullFloat64{Valid: true, Float64: 0},
		Longitude: sql.NullFloat64{Valid: true, Float64: 0},
	}

	// Tuesday 10:00, inside the default schedule.
	workday := localTime(2026, time.September, 1, 10, 0)
	// Sunday, inactive on the default schedule.
	sunday := localTime(2026, time.September, 6, 10, 0)

	jobs := []model.OpenJob{
		{ID: "job-far", ScheduledAt: workday, Latitude: 0.45, ServiceIDs: pq.StringArray{"svc-1"}},
		{ID: "job-2km", ScheduledAt: workday, TotalPrice: 120, Latitude: 0.018, ServiceIDs: pq.StringArray{"svc-1"}},
		{ID: "job-skill", ScheduledAt: workday, Latitude: 0.009, ServiceIDs: pq.StringArray{"svc-2"}},
		{ID: "job-sunday", ScheduledAt: sunday, Latitude: 0.009, ServiceIDs: pq.StringArray{"svc-1"}},
		{ID: "job-1km", ScheduledAt: workday, TotalPrice: 90, Latitude: 0.009, ServiceIDs: pq.StringArray{"svc-1"}},
	}

	t.Run("filters by radius, skill, and schedule, nearest first", func(t *testing.T) {
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.addresses.EXPECT().FirstGeocodedForUser(gomock.Any(), "user-p").Return(location, nil)
		m.catalog.EXPECT().ListProviderServiceIDs(gomock.Any(), "provider-1").Return([]string{"svc-1"}, nil)
		m.schedules.EXPECT().GetOrDefault(gomock.Any(), "provider-1").
			Return(providerModel.DefaultSchedule("provider-1"), nil)
		m.repo.EXPECT().FindOpenJobs(gomock.Any()).Return(jobs, nil)

		res, err := svc.AvailableJobs(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "job-1km", res.Jobs[0].BookingID)
		assert.Equal(t, "job-2km", res.Jobs[1].BookingID)
		assert.Less(t, res.Jobs[0].DistanceKm, res.Jobs[1].DistanceKm)
	})

	t.Run("unverified provider is rejected", func(t *testing.T) {
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").
			Return(providerModel.Provider{ID: "provider-1", UserID: "user-p", VerificationStatus: constant.VerificationPending}, nil)

		_, err := svc.AvailableJobs(ctx)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})

	t.Run("provider without geocoded address", func(t *testing.T) {
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.addresses.EXPECT().FirstGeocodedForUser(gomock.Any(), "user-p").
			Return(addressModel.Address{}, nil)

		_, err := svc.AvailableJobs(ctx)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNoWorkLocation, failure.GetReason(err))
	})

	t.Run("no offered services means empty board", func(t *testing.T) {
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.addresses.EXPECT().FirstGeocodedForUser(gomock.Any(), "user-p").Return(location, nil)
		m.catalog.EXPECT().ListProviderServiceIDs(gomock.Any(), "provider-1").Return(nil, nil)
		m.schedules.EXPECT().GetOrDefault(gomock.Any(), "provider-1").
			Return(providerModel.DefaultSchedule("provider-1"), nil)
		m.repo.EXPECT().FindOpenJobs(gomock.Any()).Return(jobs, nil)

		res, err := svc.AvailableJobs(ctx)

		assert.NoError(t, err)
		assert.Zero(t, res.TotalData)
	})
}

func TestBookingService_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	ctx := providerContext("user-p")

	provider := providerModel.Provider{
		ID:                 "provider-1",
		UserID:             "user-p",
		VerificationStatus: constant.VerificationVerified,
	}

	openBooking := model.Booking{
		ID:         "booking-1",
		CustomerID: "user-c",
		Status:     constant.BookingStatusPending,
	}

	t.Run("open job claimed successfully", func(t *testing.T) {
		claimed := openBooking
		claimed.Status = constant.BookingStatusAccepted
		claimed.ProviderID = sql.NullString{Valid: true, String: "provider-1"}

		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().DeductCredits(gomock.Any(), "provider-1", 10, "booking-1", "user-p").Return(nil)
		m.repo.EXPECT().Claim(gomock.Any(), "booking-1", "provider-1", "user-p").Return(claimed, nil)

		res, err := svc.Accept(ctx, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusAccepted, res.Status)
	})

	t.Run("insufficient credits aborts before the claim", func(t *testing.T) {
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().DeductCredits(gomock.Any(), "provider-1", 10, "booking-1", "user-p").
			Return(providerRepo.ErrInsufficientCredits)

		_, err := svc.Accept(ctx, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonInsufficientCredits, failure.GetReason(err))
	})

	t.Run("lost race refunds the fee and reports a conflict", func(t *testing.T) {
		taken := openBooking
		taken.Status = constant.BookingStatusAccepted
		taken.ProviderID = sql.NullString{Valid: true, String: "provider-2"}

		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().DeductCredits(gomock.Any(), "provider-1", 10, "booking-1", "user-p").Return(nil)
		m.repo.EXPECT().Claim(gomock.Any(), "booking-1", "provider-1", "user-p").Return(taken, nil)
		m.providers.EXPECT().
			TopUpCredits(gomock.Any(), "provider-1", 10, constant.CreditTypeRefund, "booking-1", "user-p").
			Return(nil).
			Times(1)

		_, err := svc.Accept(ctx, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonJobAlreadyTaken, failure.GetReason(err))
	})

	t.Run("already accepted job is a conflict without a charge", func(t *testing.T) {
		taken := openBooking
		taken.Status = constant.BookingStatusAccepted
		taken.ProviderID = sql.NullString{Valid: true, String: "provider-2"}

		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(taken, nil)

		_, err := svc.Accept(ctx, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})

	t.Run("direct booking accepted by the reserved provider", func(t *testing.T) {
		direct := openBooking
		direct.ProviderID = sql.NullString{Valid: true, String: "provider-1"}

		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(direct, nil)
		m.providers.EXPECT().DeductCredits(gomock.Any(), "provider-1", 10, "booking-1", "user-p").Return(nil)
		m.repo.EXPECT().AcceptAssigned(gomock.Any(), "booking-1", "provider-1", "user-p").Return(true, nil)

		res, err := svc.Accept(ctx, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusAccepted, res.Status)
	})
}

func TestBookingService_AssignProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	openBooking := model.Booking{
		ID:         "booking-1",
		CustomerID: "user-c",
		Status:     constant.BookingStatusPending,
	}

	verified := providerModel.Provider{
		ID:                 "provider-1",
		UserID:             "user-p",
		VerificationStatus: constant.VerificationVerified,
	}

	req := dto.AssignProviderRequest{ProviderID: "provider-1"}

	t.Run("open booking is reserved for the provider", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verified, nil)
		m.repo.EXPECT().Assign(gomock.Any(), "booking-1", "provider-1", "admin-1").Return(true, nil)

		res, err := svc.AssignProvider(ctx, "booking-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "provider-1", res.ProviderID)
		assert.Equal(t, constant.BookingStatusPending, res.Status)
	})

	t.Run("unverified provider is rejected", func(t *testing.T) {
		pending := verified
		pending.VerificationStatus = constant.VerificationPending

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)

		_, err := svc.AssignProvider(ctx, "booking-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonProviderUnavailable, failure.GetReason(err))
	})

	t.Run("booking claimed in the meantime is a conflict", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verified, nil)
		m.repo.EXPECT().Assign(gomock.Any(), "booking-1", "provider-1", "admin-1").Return(false, nil)

		_, err := svc.AssignProvider(ctx, "booking-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonJobAlreadyTaken, failure.GetReason(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.AssignProvider(ctx, "booking-ghost", req)

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})

	t.Run("missing provider", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openBooking, nil)
		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{}, nil)

		_, err := svc.AssignProvider(ctx, "booking-1", dto.AssignProviderRequest{ProviderID: "provider-ghost"})

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	provider := providerModel.Provider{
		ID:                 "provider-1",
		UserID:             "user-p",
		VerificationStatus: constant.VerificationVerified,
	}

	accepted := model.Booking{
		ID:         "booking-1",
		CustomerID: "user-c",
		ProviderID: sql.NullString{Valid: true, String: "provider-1"},
		Status:     constant.BookingStatusAccepted,
		TotalPrice: 150,
	}

	t.Run("completion posts earning and payment once", func(t *testing.T) {
		ctx := providerContext("user-p")

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallet.EXPECT().HasEarning(gomock.Any(), "booking-1").Return(false, nil)
		m.wallet.EXPECT().InsertEarning(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, earning walletModel.ProviderEarning) error {
				assert.Equal(t, "provider-1", earning.ProviderID)
				assert.Equal(t, float64(150), earning.Amount)

				return nil
			})
		m.wallet.EXPECT().IsPaid(gomock.Any(), "booking-1").Return(false, nil)
		m.wallet.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCompleted})

		assert.NoError(t, err)
	})

	t.Run("same status with everything posted is a no-op", func(t *testing.T) {
		ctx := customerContext("user-c")

		completed := accepted
		completed.Status = constant.BookingStatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completed, nil)
		m.wallet.EXPECT().HasEarning(gomock.Any(), "booking-1").Return(true, nil)
		m.wallet.EXPECT().IsPaid(gomock.Any(), "booking-1").Return(true, nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCompleted})

		assert.NoError(t, err)
	})

	t.Run("re-sending completed posts a missing earning", func(t *testing.T) {
		// Settlement failed after the status committed; the retry must
		// post the earning the first attempt lost.
		ctx := providerContext("user-p")

		completed := accepted
		completed.Status = constant.BookingStatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completed, nil)
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.wallet.EXPECT().HasEarning(gomock.Any(), "booking-1").Return(false, nil)
		m.wallet.EXPECT().InsertEarning(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, earning walletModel.ProviderEarning) error {
				assert.Equal(t, "provider-1", earning.ProviderID)
				assert.Equal(t, float64(150), earning.Amount)

				return nil
			})
		m.wallet.EXPECT().IsPaid(gomock.Any(), "booking-1").Return(true, nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCompleted})

		assert.NoError(t, err)
	})

	t.Run("settlement guards skip existing postings", func(t *testing.T) {
		ctx := providerContext("user-p")

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallet.EXPECT().HasEarning(gomock.Any(), "booking-1").Return(true, nil)
		m.wallet.EXPECT().IsPaid(gomock.Any(), "booking-1").Return(true, nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCompleted})

		assert.NoError(t, err)
	})

	t.Run("customer cancel refunds the provider once", func(t *testing.T) {
		ctx := customerContext("user-c")

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallet.EXPECT().HasRefund(gomock.Any(), "provider-1", "booking-1").Return(false, nil)
		m.providers.EXPECT().
			TopUpCredits(gomock.Any(), "provider-1", 10, constant.CreditTypeRefund, "booking-1", "user-c").
			Return(nil).
			Times(1)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCancelled})

		assert.NoError(t, err)
	})

	t.Run("refund is skipped when already posted", func(t *testing.T) {
		ctx := customerContext("user-c")

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallet.EXPECT().HasRefund(gomock.Any(), "provider-1", "booking-1").Return(true, nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCancelled})

		assert.NoError(t, err)
	})

	t.Run("backward transition is a conflict", func(t *testing.T) {
		ctx := customerContext("user-c")

		completed := accepted
		completed.Status = constant.BookingStatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completed, nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCancelled})

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonInvalidTransition, failure.GetReason(err))
	})

	t.Run("customer cannot complete", func(t *testing.T) {
		ctx := customerContext("user-c")

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)

		err := svc.UpdateStatus(ctx, "booking-1", dto.UpdateStatusRequest{Status: constant.BookingStatusCompleted})

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})
}

func TestBookingService_RecentClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	ctx := providerContext("user-p")

	provider := providerModel.Provider{ID: "provider-1", UserID: "user-p"}

	m.providers.EXPECT().FindByUserID(gomock.Any(), "user-p").Return(provider, nil)
	m.repo.EXPECT().RecentClients(gomock.Any(), "provider-1", 10).
		Return([]model.RecentClient{
			{CustomerID: "user-c", Bookings: 3, LastBookingAt: time.Now()},
		}, nil)

	res, err := svc.RecentClients(ctx)

	assert.NoError(t, err)
	assert.Len(t, res.Clients, 1)
	assert.Equal(t, "user-c", res.Clients[0].CustomerID)
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	booking := model.Booking{
		ID:         "booking-1",
		CustomerID: "user-c",
		Status:     constant.BookingStatusPending,
	}

	t.Run("owner sees the booking with its lines", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.repo.EXPECT().ServicesFor(gomock.Any(), "booking-1").
			Return([]model.BookingService{
				{ServiceID: "svc-1", Price: 100, Quantity: 2},
			}, nil)

		res, err := svc.Get(customerContext("user-c"), "booking-1")

		assert.NoError(t, err)
		assert.Len(t, res.Services, 1)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := svc.Get(customerContext("user-x"), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonForbidden, failure.GetReason(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(customerContext("user-c"), "booking-ghost")

		assert.Error(t, err)
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, errors.New("connection reset"))

		_, err := svc.Get(customerContext("user-c"), "booking-1")

		assert.Error(t, err)
	})
}
