package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"handy/infras/otel"
	"handy/infras/postgres"
	"handy/internal/domains/wallet/model"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/logger"
	gRepo "handy/shared/repository"
)

var (
	// ErrInsufficientBalance is returned when a payout request exceeds the
	// provider's available balance at the moment of insertion.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Wallet interface {
	Transactions(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CreditTransaction, error)
	CountTransactions(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Earnings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ProviderEarning, error)
	InsertEarning(ctx context.Context, earning model.ProviderEarning) error
	TotalEarnings(ctx context.Context, providerID string) (float64, error)
	AvailableBalance(ctx context.Context, providerID string) (float64, error)
	CreatePayoutRequest(ctx context.Context, payout model.PayoutRequest) error
	Payouts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PayoutRequest, error)
	CountPayouts(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetPayout(ctx context.Context, id string) (model.PayoutRequest, error)
	UpdatePayoutStatus(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	HasEarning(ctx context.Context, bookingID string) (bool, error)
	HasRefund(ctx context.Context, providerID, bookingID string) (bool, error)
	IsPaid(ctx context.Context, bookingID string) (bool, error)
	InsertPayment(ctx context.Context, payment model.Payment) error
}

type repositoryImpl struct {
	ledger   gRepo.Repository[model.CreditTransaction]
	earnings gRepo.Repository[model.ProviderEarning]
	payouts  gRepo.Repository[model.PayoutRequest]
	payments gRepo.Repository[model.Payment]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Wallet {
	return &repositoryImpl{
		ledger:   gRepo.NewRepository[model.CreditTransaction](model.LedgerEntityName, model.LedgerTableName, model.FieldID, db, otel),
		earnings: gRepo.NewRepository[model.ProviderEarning](model.EarningEntityName, model.EarningTableName, model.FieldID, db, otel),
		payouts:  gRepo.NewRepository[model.PayoutRequest](model.PayoutEntityName, model.PayoutTableName, model.FieldID, db, otel),
		payments: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otel),
		db:       db,
		otel:     otel,
	}
}

func (repo *repositoryImpl) Transactions(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CreditTransaction, error) {
	return repo.ledger.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountTransactions(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.ledger.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Earnings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ProviderEarning, error) {
	return repo.earnings.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertEarning(ctx context.Context, earning model.ProviderEarning) error {
	return repo.earnings.Insert(ctx, earning) //nolint:wrapcheck
}

func (repo *repositoryImpl) TotalEarnings(ctx context.Context, providerID string) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wallet.TotalEarnings")
	defer scope.End()

	query := `SELECT COALESCE(SUM(amount), 0) FROM provider_earnings WHERE provider_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total float64

	err := repo.db.Read.GetContext(ctx, &total, query, providerID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return total, nil
}

// AvailableBalance is total earnings minus every payout that has not been
// rejected. Pending payouts count against the balance so a provider cannot
// request the same money twice.
func (repo *repositoryImpl) AvailableBalance(ctx context.Context, providerID string) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wallet.AvailableBalance")
	defer scope.End()

	query := `SELECT COALESCE((SELECT SUM(amount) FROM provider_earnings WHERE provider_id = $1), 0)
		- COALESCE((SELECT SUM(amount) FROM payout_requests WHERE provider_id = $1 AND status != $2), 0)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var available float64

	err := repo.db.Read.GetContext(ctx, &available, query, providerID, constant.PayoutStatusRejected)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to compute available balance: %w", err)
	}

	return available, nil
}

// CreatePayoutRequest inserts the request only when the available balance
// still covers the amount, in a single guarded statement. Concurrent
// requests cannot jointly overdraw the balance.
func (repo *repositoryImpl) CreatePayoutRequest(ctx context.Context, payout model.PayoutRequest) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wallet.CreatePayoutRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `INSERT INTO payout_requests (id, provider_id, amount, status, created_at, modified_at, created_by, modified_by)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE (
			COALESCE((SELECT SUM(amount) FROM provider_earnings WHERE provider_id = $2), 0)
			- COALESCE((SELECT SUM(amount) FROM payout_requests WHERE provider_id = $2 AND status != $9), 0)
		) >= $3
		RETURNING id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var id string

	err = repo.db.Write.GetContext(ctx, &id, query,
		payout.ID,
		payout.ProviderID,
		payout.Amount,
		payout.Status,
		payout.CreatedAt,
		payout.ModifiedAt,
		payout.CreatedBy,
		payout.ModifiedBy,
		constant.PayoutStatusRejected,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInsufficientBalance
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to create payout request: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Payouts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PayoutRequest, error) {
	return repo.payouts.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountPayouts(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.payouts.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetPayout(ctx context.Context, id string) (model.PayoutRequest, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				ArgName:  model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.PayoutTableName,
			},
		},
	}

	return repo.payouts.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdatePayoutStatus(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.payouts.Update(ctx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) HasEarning(ctx context.Context, bookingID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wallet.HasEarning")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM provider_earnings WHERE booking_id = $1)`

	var exists bool

	err := repo.db.Read.GetContext(ctx, &exists, query, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check earning: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) HasRefund(ctx context.Context, providerID, bookingID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wallet.HasRefund")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM credit_transactions WHERE provider_id = $1 AND reference = $2 AND entry_type = $3)`

	var exists bool

	err := repo.db.Read.GetContext(ctx, &exists, query, providerID, bookingID, constant.CreditTypeRefund)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check refund: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) IsPaid(ctx context.Context, bookingID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wallet.IsPaid")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM payments WHERE booking_id = $1 AND status = $2)`

	var exists bool

	err := repo.db.Read.GetContext(ctx, &exists, query, bookingID, model.PaymentStatusCompleted)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check payment: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) InsertPayment(ctx context.Context, payment model.Payment) error {
	return repo.payments.Insert(ctx, payment) //nolint:wrapcheck
}
