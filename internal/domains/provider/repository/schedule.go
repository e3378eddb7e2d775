package repository

//go:generate go run go.uber.org/mock/mockgen -source=./schedule.go -destination=../mocks/schedule_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"handy/infras/otel"
	"handy/infras/postgres"
	"handy/internal/domains/provider/model"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/logger"
	gModel "handy/shared/model"
	gRepo "handy/shared/repository"
	"handy/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Schedule interface {
	GetOrDefault(ctx context.Context, providerID string) ([]model.ProviderSchedule, error)
	Replace(ctx context.Context, providerID string, schedules []model.ProviderSchedule) error
}

type scheduleRepositoryImpl struct {
	gRepo.Repository[model.ProviderSchedule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSchedule(db *postgres.Connection, otel otel.Otel) Schedule {
	return &scheduleRepositoryImpl{
		Repository: gRepo.NewRepository[model.ProviderSchedule](model.ScheduleEntityName, model.ScheduleTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetOrDefault returns the provider's stored week. When none has ever been
// saved the default working week is persisted on first access and returned.
func (repo *scheduleRepositoryImpl) GetOrDefault(ctx context.Context, providerID string) ([]model.ProviderSchedule, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderID,
				ArgName:  model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.ScheduleTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldWeekday,
		SortDir: gDto.SortDirAsc,
	}

	schedules, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if len(schedules) == 0 {
		return repo.seedDefaultWeek(ctx, providerID)
	}

	return schedules, nil
}

// seedDefaultWeek stores the default working week for a provider that never
// set one up. A concurrent first access can win the insert; the unique
// violation is harmless because both writers seed identical rows.
func (repo *scheduleRepositoryImpl) seedDefaultWeek(ctx context.Context, providerID string) ([]model.ProviderSchedule, error) {
	now := timezone.Now()

	schedules := model.DefaultSchedule(providerID)
	for i := range schedules {
		schedules[i].ID = uuid.NewString()
		schedules[i].Metadata = gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  providerID,
			ModifiedBy: providerID,
		}
	}

	if err := repo.InsertBulk(ctx, schedules); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return schedules, nil
		}

		return nil, err //nolint:wrapcheck
	}

	return schedules, nil
}

// Replace swaps the provider's whole week in one transaction.
func (repo *scheduleRepositoryImpl) Replace(ctx context.Context, providerID string, schedules []model.ProviderSchedule) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".providerSchedule.Replace")
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
				log.Error().Err(rollbackErr).Msg("failed to rollback schedule replace")
			}
		}
	}()

	_, err = tx.ExecContext(ctx, "DELETE FROM provider_schedules WHERE provider_id = $1", providerID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to clear schedule: %w", err)
	}

	if err = repo.InsertBulkTx(ctx, tx, schedules); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit schedule replace: %w", err)
	}

	return nil
}
