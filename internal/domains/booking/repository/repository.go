package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"handy/infras/otel"
	"handy/infras/postgres"
	"handy/internal/domains/booking/model"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/logger"
	gRepo "handy/shared/repository"
	"handy/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	CreateWithServices(ctx context.Context, booking model.Booking, services []model.BookingService) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	FindOpenJobs(ctx context.Context) ([]model.OpenJob, error)
	Claim(ctx context.Context, bookingID, providerID, actor string) (model.Booking, error)
	AcceptAssigned(ctx context.Context, bookingID, providerID, actor string) (bool, error)
	Assign(ctx context.Context, bookingID, providerID, actor string) (bool, error)
	HasCompletedRelation(ctx context.Context, customerID, providerID string) (bool, error)
	ServicesFor(ctx context.Context, bookingID string) ([]model.BookingService, error)
	RecentClients(ctx context.Context, providerID string, limit int) ([]model.RecentClient, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	lines gRepo.Repository[model.BookingService]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:      gRepo.NewRepository[model.BookingService](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithServices writes the booking header and its line items in one
// transaction, so a booking can never exist without its priced lines.
func (repo *repositoryImpl) CreateWithServices(ctx context.Context, booking model.Booking, services []model.BookingService) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking creation")
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.lines.InsertBulkTx(ctx, tx, services); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking creation: %w", err)
	}

	return nil
}

// FindOpenJobs returns every pending unclaimed booking whose address has
// coordinates, with the requested service ids aggregated per booking.
// Distance, skill, and schedule filtering happen in the service layer.
func (repo *repositoryImpl) FindOpenJobs(ctx context.Context) ([]model.OpenJob, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOpenJobs")
	defer scope.End()

	query := `SELECT b.id, b.customer_id, b.address_id, b.scheduled_at, b.total_price, b.created_at,
			a.latitude, a.longitude,
			ARRAY_AGG(bs.service_id) AS service_ids
		FROM bookings b
		JOIN addresses a ON a.id = b.address_id
		JOIN booking_services bs ON bs.booking_id = b.id
		WHERE b.status = $1 AND b.provider_id IS NULL
			AND a.latitude IS NOT NULL AND a.longitude IS NOT NULL
		GROUP BY b.id, a.latitude, a.longitude
		ORDER BY b.scheduled_at ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var jobs []model.OpenJob

	err := repo.db.Read.SelectContext(ctx, &jobs, query, constant.BookingStatusPending)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find open jobs: %w", err)
	}

	return jobs, nil
}

// Claim attempts to take an open job for the provider. The update only
// lands while the booking is still unclaimed, so exactly one of any number
// of concurrent claimants wins. The booking row is re-read afterwards; the
// caller decides who won by inspecting its provider id.
func (repo *repositoryImpl) Claim(ctx context.Context, bookingID, providerID, actor string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Claim")
	defer scope.End()
	defer scope.TraceIfError(err)

	claim := `UPDATE bookings SET provider_id = $1, status = $2, modified_at = $3, modified_by = $4
		WHERE id = $5 AND provider_id IS NULL AND status = $6`
	scope.SetAttribute(constant.OtelQueryAttributeKey, claim)

	_, err = repo.db.Write.ExecContext(ctx, claim,
		providerID,
		constant.BookingStatusAccepted,
		timezone.Now(),
		actor,
		bookingID,
		constant.BookingStatusPending,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to claim booking: %w", err)
	}

	query := `SELECT id, customer_id, provider_id, address_id, status, scheduled_at, total_price, notes,
			created_at, modified_at, created_by, modified_by
		FROM bookings WHERE id = $1`

	err = repo.db.Write.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to read claimed booking: %w", err)
	}

	return booking, nil
}

// AcceptAssigned moves a direct booking from pending to accepted for the
// provider it was created for. Returns false when the booking already left
// the pending state.
func (repo *repositoryImpl) AcceptAssigned(ctx context.Context, bookingID, providerID, actor string) (accepted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.AcceptAssigned")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE bookings SET status = $1, modified_at = $2, modified_by = $3
		WHERE id = $4 AND provider_id = $5 AND status = $6`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query,
		constant.BookingStatusAccepted,
		timezone.Now(),
		actor,
		bookingID,
		providerID,
		constant.BookingStatusPending,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to accept booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to accept booking: %w", err)
	}

	return affected > 0, nil
}

// Assign reserves an open booking for a specific provider without changing
// its status; the provider still has to accept it. The update only lands
// while the booking is unclaimed, so an assignment cannot overwrite a
// concurrent claim. Returns false when the booking is no longer open.
func (repo *repositoryImpl) Assign(ctx context.Context, bookingID, providerID, actor string) (assigned bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE bookings SET provider_id = $1, modified_at = $2, modified_by = $3
		WHERE id = $4 AND provider_id IS NULL AND status = $5`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query,
		providerID,
		timezone.Now(),
		actor,
		bookingID,
		constant.BookingStatusPending,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to assign booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to assign booking: %w", err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) HasCompletedRelation(ctx context.Context, customerID, providerID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasCompletedRelation")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE customer_id = $1 AND provider_id = $2 AND status = $3)`

	var exists bool

	err := repo.db.Read.GetContext(ctx, &exists, query, customerID, providerID, constant.BookingStatusCompleted)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check relation: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) ServicesFor(ctx context.Context, bookingID string) ([]model.BookingService, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				ArgName:  model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ServiceTableName,
			},
		},
	}

	return repo.lines.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) RecentClients(ctx context.Context, providerID string, limit int) ([]model.RecentClient, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RecentClients")
	defer scope.End()

	query := `SELECT customer_id, COUNT(*) AS bookings, MAX(created_at) AS last_booking_at
		FROM bookings
		WHERE provider_id = $1 AND status = $2
		GROUP BY customer_id
		ORDER BY last_booking_at DESC
		LIMIT $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var clients []model.RecentClient

	err := repo.db.Read.SelectContext(ctx, &clients, query, providerID, constant.BookingStatusCompleted, limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list recent clients: %w", err)
	}

	return clients, nil
}
