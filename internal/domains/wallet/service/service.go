package service

import (
	"context"
	"errors"
	"fmt"
	"handy/config"
	"handy/infras/otel"
	providerModel "handy/internal/domains/provider/model"
	providerRepo "handy/internal/domains/provider/repository"
	"handy/internal/domains/wallet/model"
	"handy/internal/domains/wallet/model/dto"
	"handy/internal/domains/wallet/repository"
	"handy/shared"
	"handy/shared/cache"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/failure"
	gModel "handy/shared/model"
	"handy/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBalance = "wallet:balance"
)

type Wallet interface {
	Balance(ctx context.Context) (dto.BalanceResponse, error)
	Transactions(ctx context.Context, params gDto.QueryParams) (dto.GetTransactionsResponse, error)
	Earnings(ctx context.Context, params gDto.QueryParams) (dto.GetEarningsResponse, error)
	RequestPayout(ctx context.Context, req dto.RequestPayoutRequest) (dto.PayoutResponse, error)
	Payouts(ctx context.Context, params gDto.QueryParams) (dto.GetPayoutsResponse, error)
	ReviewPayout(ctx context.Context, id string, req dto.ReviewPayoutRequest) error
	RecordTopUp(ctx context.Context, req dto.TopUpRequest) error
}

type serviceImpl struct {
	repo      repository.Wallet
	providers providerRepo.Provider
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Wallet, providers providerRepo.Provider, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Wallet {
	return &serviceImpl{
		repo:      repo,
		providers: providers,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Balance(ctx context.Context) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.Balance")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	available, err := s.repo.AvailableBalance(ctx, provider.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available balance")

		return res, fmt.Errorf("failed to get available balance: %w", err)
	}

	res.Credits = provider.Credits
	res.Available = available

	return res, nil
}

func (s *serviceImpl) Transactions(ctx context.Context, params gDto.QueryParams) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.Transactions")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(provider.ID, model.FieldProviderID, model.LedgerTableName)

	total, err := s.repo.CountTransactions(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	transactions, err := s.repo.Transactions(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(transactions, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Earnings(ctx context.Context, params gDto.QueryParams) (res dto.GetEarningsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.Earnings")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	earnings, err := s.repo.Earnings(ctx, params, shared.FilterByID(provider.ID, model.FieldProviderID, model.EarningTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get earnings")

		return res, fmt.Errorf("failed to get earnings: %w", err)
	}

	total, err := s.repo.TotalEarnings(ctx, provider.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum earnings")

		return res, fmt.Errorf("failed to sum earnings: %w", err)
	}

	available, err := s.repo.AvailableBalance(ctx, provider.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available balance")

		return res, fmt.Errorf("failed to get available balance: %w", err)
	}

	res.FromModels(earnings, total, available)

	return res, nil
}

func (s *serviceImpl) RequestPayout(ctx context.Context, req dto.RequestPayoutRequest) (res dto.PayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.RequestPayout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	payout := model.PayoutRequest{
		ID:         uuid.NewString(),
		ProviderID: provider.ID,
		Amount:     req.Amount,
		Status:     constant.PayoutStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.repo.CreatePayoutRequest(ctx, payout)
	if errors.Is(err, repository.ErrInsufficientBalance) {
		return res, failure.BusinessRule(failure.ReasonInsufficientBalance, "requested amount exceeds available balance") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to request payout")

		return res, fmt.Errorf("failed to request payout: %w", err)
	}

	res.FromModel(payout)

	return res, nil
}

func (s *serviceImpl) Payouts(ctx context.Context, params gDto.QueryParams) (res dto.GetPayoutsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.Payouts")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(provider.ID, model.FieldProviderID, model.PayoutTableName)

	total, err := s.repo.CountPayouts(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payouts")

		return res, fmt.Errorf("failed to count payouts: %w", err)
	}

	payouts, err := s.repo.Payouts(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payouts")

		return res, fmt.Errorf("failed to get payouts: %w", err)
	}

	res.FromModels(payouts, total, params.Limit)

	return res, nil
}

// ReviewPayout moves a pending payout to approved or rejected. Reviews are
// final; a settled payout cannot change status again.
func (s *serviceImpl) ReviewPayout(ctx context.Context, id string, req dto.ReviewPayoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.ReviewPayout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payout, err := s.repo.GetPayout(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payout")

		return fmt.Errorf("failed to get payout: %w", err)
	}

	if payout.ID == constant.Empty {
		return failure.NotFound("payout request not found") // nolint:wrapcheck
	}

	if payout.Status != constant.PayoutStatusPending {
		return failure.Conflict(failure.ReasonInvalidTransition, "payout request has already been reviewed") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		"reviewed_by":            user,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdatePayoutStatus(ctx, fields, shared.FilterByID(id, model.FieldID, model.PayoutTableName)); err != nil {
		log.Error().Err(err).Msg("failed to review payout")

		return fmt.Errorf("failed to review payout: %w", err)
	}

	return nil
}

// RecordTopUp posts an externally collected credit purchase to the wallet.
// It is called by the payment gateway callback, authenticated by API key.
func (s *serviceImpl) RecordTopUp(ctx context.Context, req dto.TopUpRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wallet.RecordTopUp")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = "system"
	}

	err = s.providers.TopUpCredits(ctx, req.ProviderID, req.Amount, constant.CreditTypeTopUp, req.Reference, user)
	if errors.Is(err, providerRepo.ErrProviderNotFound) {
		return failure.NotFound("provider not found") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to record top-up")

		return fmt.Errorf("failed to record top-up: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBalance)
	}()

	return nil
}

func (s *serviceImpl) currentProvider(ctx context.Context) (res providerModel.Provider, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.providers.FindByUserID(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return res, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return res, failure.NotFound("provider profile not found") // nolint:wrapcheck
	}

	return provider, nil
}
