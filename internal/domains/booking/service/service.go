package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"handy/config"
	"handy/infras/otel"
	addressModel "handy/internal/domains/address/model"
	addressRepo "handy/internal/domains/address/repository"
	"handy/internal/domains/booking/model"
	"handy/internal/domains/booking/model/dto"
	"handy/internal/domains/booking/repository"
	catalogRepo "handy/internal/domains/catalog/repository"
	"handy/internal/domains/notifier"
	providerModel "handy/internal/domains/provider/model"
	providerRepo "handy/internal/domains/provider/repository"
	walletModel "handy/internal/domains/wallet/model"
	walletRepo "handy/internal/domains/wallet/repository"
	"handy/shared"
	"handy/shared/cache"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/failure"
	"handy/shared/geo"
	gModel "handy/shared/model"
	"handy/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	recentClientsLimit = 10
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ListMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	AvailableJobs(ctx context.Context) (dto.GetJobsResponse, error)
	Accept(ctx context.Context, id string) (dto.BookingResponse, error)
	AssignProvider(ctx context.Context, id string, req dto.AssignProviderRequest) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	RecentClients(ctx context.Context) (dto.GetRecentClientsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	catalog   catalogRepo.Catalog
	addresses addressRepo.Address
	providers providerRepo.Provider
	schedules providerRepo.Schedule
	wallet    walletRepo.Wallet
	notifier  notifier.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	catalog catalogRepo.Catalog,
	addresses addressRepo.Address,
	providers providerRepo.Provider,
	schedules providerRepo.Schedule,
	wallet walletRepo.Wallet,
	notifier notifier.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		catalog:   catalog,
		addresses: addresses,
		providers: providers,
		schedules: schedules,
		wallet:    wallet,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books a set of services at one of the customer's addresses. Prices
// are resolved server side from the catalog; for direct bookings the chosen
// provider's custom prices apply and the provider must have worked with the
// customer before.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	scheduledAt, err := req.ParseScheduledAt()
	if err != nil {
		return res, failure.BadRequestFromString("invalid scheduled_at format") // nolint:wrapcheck
	}

	if !s.withinOperatingWindow(scheduledAt) {
		return res, failure.BusinessRule(failure.ReasonOutOfHours, // nolint:wrapcheck
			fmt.Sprintf("bookings must be scheduled between %02d:00 and %02d:00 local time",
				s.cfg.Booking.OperatingStartHour, s.cfg.Booking.OperatingEndHour))
	}

	address, err := s.addresses.Get(ctx, shared.FilterByID(req.AddressID, addressModel.FieldID, addressModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get address")

		return res, fmt.Errorf("failed to get address: %w", err)
	}

	if address.ID == constant.Empty {
		return res, failure.NotFound("address not found") // nolint:wrapcheck
	}

	if address.UserID != user {
		return res, failure.Forbidden("address belongs to another user") // nolint:wrapcheck
	}

	if req.ProviderID != constant.Empty {
		if err = s.checkDirectProvider(ctx, user, req.ProviderID, scheduledAt); err != nil {
			return res, err
		}
	}

	prices, err := s.catalog.ResolvePrices(ctx, req.ServiceIDs(), req.ProviderID)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve prices")

		return res, fmt.Errorf("failed to resolve prices: %w", err)
	}

	booking := model.Booking{
		ID:          uuid.NewString(),
		CustomerID:  user,
		AddressID:   req.AddressID,
		Status:      constant.BookingStatusPending,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if req.ProviderID != constant.Empty {
		booking.ProviderID.Valid = true
		booking.ProviderID.String = req.ProviderID
	}

	lines := make([]model.BookingService, 0, len(req.Services))

	for _, line := range req.Services {
		price, ok := prices[line.ServiceID]
		if !ok {
			return res, failure.BusinessRule(failure.ReasonInvalidService, // nolint:wrapcheck
				fmt.Sprintf("service %s does not exist or is inactive", line.ServiceID))
		}

		unit := price.Effective()
		booking.TotalPrice += unit * float64(line.Quantity)

		lines = append(lines, model.BookingService{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			ServiceID: line.ServiceID,
			Price:     unit,
			Quantity:  line.Quantity,
			Metadata:  booking.Metadata,
		})
	}

	if err = s.repo.CreateWithServices(ctx, booking, lines); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if !booking.Assigned() && address.Geocoded() {
		event := notifier.JobEvent{
			BookingID:   booking.ID,
			CustomerID:  booking.CustomerID,
			ServiceIDs:  req.ServiceIDs(),
			Latitude:    address.Latitude.Float64,
			Longitude:   address.Longitude.Float64,
			ScheduledAt: booking.ScheduledAt,
		}

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.notifier.JobAvailable(c, event); err != nil {
				log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish job available event")
			}
		}()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	res.FromModel(booking)
	res.WithServices(lines)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetchVisible(ctx, id)
	if err != nil {
		return res, err
	}

	lines, err := s.repo.ServicesFor(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModel(booking)
	res.WithServices(lines)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	filterField := model.FieldCustomerID

	if role == constant.RoleProvider {
		provider, provErr := s.currentProvider(ctx)
		if provErr != nil {
			return res, provErr
		}

		filterField = model.FieldProviderID
		user = provider.ID
	}

	filter := shared.FilterByID(user, filterField, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// AvailableJobs returns the open jobs this provider can serve: within the
// configured radius of their work location, matching at least one offered
// service, and inside their working hours. Nearest first.
func (s *serviceImpl) AvailableJobs(ctx context.Context) (res dto.GetJobsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AvailableJobs")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	if !provider.Verified() {
		return res, failure.Forbidden("provider is not verified") // nolint:wrapcheck
	}

	location, err := s.addresses.FirstGeocodedForUser(ctx, provider.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get work location")

		return res, fmt.Errorf("failed to get work location: %w", err)
	}

	if !location.Geocoded() {
		return res, failure.BusinessRule(failure.ReasonNoWorkLocation, "provider has no geocoded address") // nolint:wrapcheck
	}

	offered, err := s.catalog.ListProviderServiceIDs(ctx, provider.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list provider services")

		return res, fmt.Errorf("failed to list provider services: %w", err)
	}

	offeredSet := make(map[string]bool, len(offered))
	for _, id := range offered {
		offeredSet[id] = true
	}

	schedules, err := s.schedules.GetOrDefault(ctx, provider.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return res, fmt.Errorf("failed to get schedule: %w", err)
	}

	jobs, err := s.repo.FindOpenJobs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to find open jobs")

		return res, fmt.Errorf("failed to find open jobs: %w", err)
	}

	matches := make([]dto.JobResponse, 0, len(jobs))

	for _, job := range jobs {
		distance := geo.DistanceKm(location.Latitude.Float64, location.Longitude.Float64, job.Latitude, job.Longitude)
		if distance > s.cfg.Booking.JobRadiusKm {
			continue
		}

		if !s.offersAny(offeredSet, job.ServiceIDs) {
			continue
		}

		if !providerModel.WorksAt(schedules, job.ScheduledAt) {
			continue
		}

		matches = append(matches, dto.JobResponse{
			BookingID:   job.ID,
			ScheduledAt: timezone.Format(job.ScheduledAt, constant.DateFormat),
			TotalPrice:  job.TotalPrice,
			DistanceKm:  distance,
			ServiceIDs:  job.ServiceIDs,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	res.Jobs = matches
	res.TotalData = len(matches)

	return res, nil
}

// Accept claims a job for the calling provider. The job fee is charged
// before the claim; when the claim loses the race the fee is refunded and
// the caller gets a conflict. The fee is never charged without a claim
// attempt, and a lost claim is never left unrefunded.
func (s *serviceImpl) Accept(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Accept")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	if !provider.Verified() {
		return res, failure.Forbidden("provider is not verified") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Assigned() && booking.ProviderID.String != provider.ID {
		return res, failure.Forbidden("booking is reserved for another provider") // nolint:wrapcheck
	}

	if booking.Status != constant.BookingStatusPending {
		return res, failure.Conflict(failure.ReasonJobAlreadyTaken, "booking is no longer open") // nolint:wrapcheck
	}

	fee := s.cfg.Booking.JobFeeCredits

	err = s.providers.DeductCredits(ctx, provider.ID, fee, booking.ID, user)
	if errors.Is(err, providerRepo.ErrInsufficientCredits) {
		return res, failure.PaymentRequired(failure.ReasonInsufficientCredits, // nolint:wrapcheck
			fmt.Sprintf("accepting a job costs %d credits", fee))
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to charge job fee")

		return res, fmt.Errorf("failed to charge job fee: %w", err)
	}

	var claimed model.Booking

	if booking.Assigned() {
		accepted, acceptErr := s.repo.AcceptAssigned(ctx, booking.ID, provider.ID, user)
		if acceptErr != nil {
			return res, s.refundAfterFailedClaim(ctx, provider.ID, booking.ID, user, acceptErr)
		}

		if !accepted {
			return res, s.refundLostClaim(ctx, provider.ID, booking.ID, user)
		}

		claimed = booking
		claimed.Status = constant.BookingStatusAccepted
	} else {
		claimed, err = s.repo.Claim(ctx, booking.ID, provider.ID, user)
		if err != nil {
			return res, s.refundAfterFailedClaim(ctx, provider.ID, booking.ID, user, err)
		}

		if !claimed.Assigned() || claimed.ProviderID.String != provider.ID {
			return res, s.refundLostClaim(ctx, provider.ID, booking.ID, user)
		}
	}

	event := notifier.JobEvent{
		BookingID:   claimed.ID,
		CustomerID:  claimed.CustomerID,
		ProviderID:  provider.ID,
		ScheduledAt: claimed.ScheduledAt,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.JobTaken(c, event); err != nil {
			log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish job taken event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, event.BookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	res.FromModel(claimed)

	return res, nil
}

// AssignProvider reserves an open booking for a chosen verified provider.
// The booking stays pending; the provider still accepts it through the
// regular claim flow, which charges the job fee.
func (s *serviceImpl) AssignProvider(ctx context.Context, id string, req dto.AssignProviderRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AssignProvider")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	provider, err := s.providers.Get(ctx, shared.FilterByID(req.ProviderID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return res, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return res, failure.NotFound("provider not found") // nolint:wrapcheck
	}

	if !provider.Verified() {
		return res, failure.BusinessRule(failure.ReasonProviderUnavailable, "provider is not verified") // nolint:wrapcheck
	}

	assigned, err := s.repo.Assign(ctx, booking.ID, provider.ID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to assign booking")

		return res, fmt.Errorf("failed to assign booking: %w", err)
	}

	if !assigned {
		return res, failure.Conflict(failure.ReasonJobAlreadyTaken, "booking is no longer open") // nolint:wrapcheck
	}

	booking.ProviderID.Valid = true
	booking.ProviderID.String = provider.ID

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

// UpdateStatus moves a booking along its lifecycle. Completion settles the
// booking: the provider's earning is posted and an offline payment is
// recorded unless one already exists. A customer cancelling an accepted
// booking triggers a one-time job fee refund to the provider. Re-sending
// the current status re-runs the guarded settlement side effects, so a
// posting that failed after the status committed can be retried; when
// everything is already posted the call is a no-op.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.fetchVisible(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == req.Status {
		switch req.Status {
		case constant.BookingStatusCompleted:
			return s.settle(ctx, booking, user)
		case constant.BookingStatusCancelled:
			return s.refundOnCancel(ctx, booking, role, user)
		}

		return nil
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return failure.Conflict(failure.ReasonInvalidTransition, // nolint:wrapcheck
			fmt.Sprintf("cannot move booking from %s to %s", booking.Status, req.Status))
	}

	if req.Status == constant.BookingStatusCompleted && role == constant.RoleCustomer {
		return failure.Forbidden("only the provider can complete a booking") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	switch req.Status {
	case constant.BookingStatusCompleted:
		if err = s.settle(ctx, booking, user); err != nil {
			return err
		}
	case constant.BookingStatusCancelled:
		if err = s.refundOnCancel(ctx, booking, role, user); err != nil {
			return err
		}
	}

	event := notifier.BookingEvent{
		BookingID: booking.ID,
		Status:    req.Status,
		Actor:     user,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.BookingStatusChanged(c, event); err != nil {
			log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish booking status event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, event.BookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) RecentClients(ctx context.Context) (res dto.GetRecentClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RecentClients")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	clients, err := s.repo.RecentClients(ctx, provider.ID, recentClientsLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list recent clients")

		return res, fmt.Errorf("failed to list recent clients: %w", err)
	}

	res.FromModels(clients)

	return res, nil
}

// settle posts the provider's earning and records an offline payment for a
// completed booking. Both postings are guarded by existence checks so
// re-completion cannot double-pay.
func (s *serviceImpl) settle(ctx context.Context, booking model.Booking, actor string) error {
	if !booking.Assigned() {
		return nil
	}

	hasEarning, err := s.wallet.HasEarning(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check earning")

		return fmt.Errorf("failed to check earning: %w", err)
	}

	if !hasEarning {
		earning := walletModel.ProviderEarning{
			ID:         uuid.NewString(),
			ProviderID: booking.ProviderID.String,
			BookingID:  booking.ID,
			Amount:     booking.TotalPrice,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		}

		if err = s.wallet.InsertEarning(ctx, earning); err != nil {
			log.Error().Err(err).Msg("failed to post earning")

			return fmt.Errorf("failed to post earning: %w", err)
		}
	}

	paid, err := s.wallet.IsPaid(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check payment")

		return fmt.Errorf("failed to check payment: %w", err)
	}

	if !paid {
		payment := walletModel.Payment{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			Amount:    booking.TotalPrice,
			Provider:  constant.PaymentProviderOffline,
			Status:    walletModel.PaymentStatusCompleted,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		}

		if err = s.wallet.InsertPayment(ctx, payment); err != nil {
			log.Error().Err(err).Msg("failed to record payment")

			return fmt.Errorf("failed to record payment: %w", err)
		}
	}

	return nil
}

// refundOnCancel returns the job fee to the provider when the customer
// cancels an accepted booking. The refund is posted at most once.
func (s *serviceImpl) refundOnCancel(ctx context.Context, booking model.Booking, role, actor string) error {
	if !booking.Assigned() || role != constant.RoleCustomer {
		return nil
	}

	refunded, err := s.wallet.HasRefund(ctx, booking.ProviderID.String, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check refund")

		return fmt.Errorf("failed to check refund: %w", err)
	}

	if refunded {
		return nil
	}

	err = s.providers.TopUpCredits(ctx, booking.ProviderID.String, s.cfg.Booking.JobFeeCredits, constant.CreditTypeRefund, booking.ID, actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to refund job fee")

		return fmt.Errorf("failed to refund job fee: %w", err)
	}

	return nil
}

// checkDirectProvider validates a customer's request to book a specific
// provider: the provider must exist and be verified, must have completed a
// booking for this customer before, and must be working at the requested
// time.
func (s *serviceImpl) checkDirectProvider(ctx context.Context, customerID, providerID string, scheduledAt time.Time) error {
	provider, err := s.providers.Get(ctx, shared.FilterByID(providerID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return failure.NotFound("provider not found") // nolint:wrapcheck
	}

	if !provider.Verified() {
		return failure.BusinessRule(failure.ReasonProviderUnavailable, "provider is not verified") // nolint:wrapcheck
	}

	related, err := s.repo.HasCompletedRelation(ctx, customerID, providerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking history")

		return fmt.Errorf("failed to check booking history: %w", err)
	}

	if !related {
		return failure.BusinessRule(failure.ReasonNoRelation, // nolint:wrapcheck
			"direct bookings require a previously completed booking with this provider")
	}

	schedules, err := s.schedules.GetOrDefault(ctx, providerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if !providerModel.WorksAt(schedules, scheduledAt) {
		return failure.BusinessRule(failure.ReasonProviderUnavailable, // nolint:wrapcheck
			"provider does not work at the requested time")
	}

	return nil
}

func (s *serviceImpl) refundLostClaim(ctx context.Context, providerID, bookingID, actor string) error {
	if err := s.providers.TopUpCredits(ctx, providerID, s.cfg.Booking.JobFeeCredits, constant.CreditTypeRefund, bookingID, actor); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to refund job fee after lost claim")

		return fmt.Errorf("failed to refund job fee after lost claim: %w", err)
	}

	return failure.Conflict(failure.ReasonJobAlreadyTaken, "booking was claimed by another provider") // nolint:wrapcheck
}

func (s *serviceImpl) refundAfterFailedClaim(ctx context.Context, providerID, bookingID, actor string, cause error) error {
	log.Error().Err(cause).Str("bookingID", bookingID).Msg("claim failed after fee deduction, refunding")

	if err := s.providers.TopUpCredits(ctx, providerID, s.cfg.Booking.JobFeeCredits, constant.CreditTypeRefund, bookingID, actor); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to refund job fee after failed claim")

		return fmt.Errorf("failed to refund job fee after failed claim: %w", err)
	}

	return fmt.Errorf("failed to claim booking: %w", cause)
}

// withinOperatingWindow checks the scheduled time against the configured
// daily service hours, evaluated in local time.
func (s *serviceImpl) withinOperatingWindow(t time.Time) bool {
	minutes := timezone.ClockMinutes(timezone.ToLocal(t))

	return minutes >= s.cfg.Booking.OperatingStartHour*60 && minutes < s.cfg.Booking.OperatingEndHour*60
}

func (s *serviceImpl) offersAny(offered map[string]bool, serviceIDs []string) bool {
	for _, id := range serviceIDs {
		if offered[id] {
			return true
		}
	}

	return false
}

func (s *serviceImpl) currentProvider(ctx context.Context) (providerModel.Provider, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.providers.FindByUserID(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return provider, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return provider, failure.NotFound("provider profile not found") // nolint:wrapcheck
	}

	return provider, nil
}

func (s *serviceImpl) fetchVisible(ctx context.Context, id string) (model.Booking, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if role == constant.RoleAdmin || booking.CustomerID == user {
		return booking, nil
	}

	if role == constant.RoleProvider {
		provider, provErr := s.currentProvider(ctx)
		if provErr != nil {
			return booking, provErr
		}

		if booking.Assigned() && booking.ProviderID.String == provider.ID {
			return booking, nil
		}
	}

	return booking, failure.Forbidden("booking belongs to another user") // nolint:wrapcheck
}
