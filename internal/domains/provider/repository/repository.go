package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

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
	gRepo "handy/shared/repository"
	"handy/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInsufficientCredits is returned when a debit would take the wallet
	// below zero. The wallet row and ledger are left untouched.
	ErrInsufficientCredits = errors.New("insufficient credits")

	ErrProviderNotFound = errors.New("provider not found")
)

type Provider interface {
	Insert(ctx context.Context, model model.Provider) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Provider, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Provider, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	FindByUserID(ctx context.Context, userID string) (model.Provider, error)
	DeductCredits(ctx context.Context, providerID string, amount int, reference, actor string) error
	TopUpCredits(ctx context.Context, providerID string, amount int, entryType, reference, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Provider]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Provider {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Provider](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) FindByUserID(ctx context.Context, userID string) (model.Provider, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				ArgName:  model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter) //nolint:wrapcheck
}

// DeductCredits atomically charges the provider's wallet and posts the
// matching ledger entry. The debit is guarded so the balance can never go
// negative; on a failed guard nothing is written.
func (repo *repositoryImpl) DeductCredits(ctx context.Context, providerID string, amount int, reference, actor string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".provider.DeductCredits")
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
				log.Error().Err(rollbackErr).Msg("failed to rollback credit deduction")
			}
		}
	}()

	debit := `UPDATE providers SET credits = credits - $1, modified_at = $2, modified_by = $3
		WHERE id = $4 AND credits >= $1`

	result, err := tx.ExecContext(ctx, debit, amount, timezone.Now(), actor, providerID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to deduct credits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to deduct credits: %w", err)
	}

	if affected == 0 {
		var exists bool

		err = tx.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM providers WHERE id = $1)", providerID)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to check provider: %w", err)
		}

		if !exists {
			return ErrProviderNotFound
		}

		return ErrInsufficientCredits
	}

	err = insertLedgerEntry(ctx, tx, providerID, -amount, constant.CreditTypeJobFee, reference, actor)
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit credit deduction: %w", err)
	}

	return nil
}

// TopUpCredits atomically credits the provider's wallet and posts the
// matching ledger entry. It backs both admin top-ups and job fee refunds.
func (repo *repositoryImpl) TopUpCredits(ctx context.Context, providerID string, amount int, entryType, reference, actor string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".provider.TopUpCredits")
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
				log.Error().Err(rollbackErr).Msg("failed to rollback credit top-up")
			}
		}
	}()

	credit := `UPDATE providers SET credits = credits + $1, modified_at = $2, modified_by = $3 WHERE id = $4`

	result, err := tx.ExecContext(ctx, credit, amount, timezone.Now(), actor, providerID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to top up credits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to top up credits: %w", err)
	}

	if affected == 0 {
		return ErrProviderNotFound
	}

	err = insertLedgerEntry(ctx, tx, providerID, amount, entryType, reference, actor)
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit credit top-up: %w", err)
	}

	return nil
}

func insertLedgerEntry(ctx context.Context, tx *sqlx.Tx, providerID string, amount int, entryType, reference, actor string) error {
	query := `INSERT INTO credit_transactions (id, provider_id, amount, entry_type, reference, created_at, modified_at, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := timezone.Now()

	_, err := tx.ExecContext(ctx, query, uuid.NewString(), providerID, amount, entryType, reference, now, now, actor, actor)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	return nil
}
