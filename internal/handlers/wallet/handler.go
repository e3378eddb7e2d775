package wallet

import (
	"net/http"

	"handy/infras/otel"
	"handy/internal/domains/wallet/model/dto"
	"handy/internal/domains/wallet/service"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/validator"
	"handy/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wallet
	otel    otel.Otel
}

func New(service service.Wallet, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wallet", func(routerGroup chi.Router) {
		routerGroup.Get("/balance", handler.GetBalance)
		routerGroup.Get("/transactions", handler.GetTransactions)
		routerGroup.Get("/earnings", handler.GetEarnings)
		routerGroup.Post("/payouts", handler.RequestPayout)
		routerGroup.Get("/payouts", handler.GetPayouts)
		routerGroup.Patch("/payouts/{id}", handler.ReviewPayout)
		routerGroup.Post("/topups", handler.RecordTopUp)
	})
}

// GetBalance retrieves the provider's credit and earning balances.
// @Summary Get wallet balance
// @Description Retrieve the provider's credit balance and available earnings.
// @Tags Wallet
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BalanceResponse] "Wallet balance"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/balance [get]
// @Security BearerAuth
func (handler *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalance")
	defer scope.End()

	balance, err := handler.service.Balance(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wallet balance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wallet balance retrieved successfully")

	response.WithJSON(w, http.StatusOK, balance)
}

// GetTransactions retrieves the provider's credit ledger.
// @Summary Get credit transactions
// @Description Retrieve the provider's credit ledger entries, newest first.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "List of transactions"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	transactions, err := handler.service.Transactions(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetEarnings retrieves the provider's earnings.
// @Summary Get earnings
// @Description Retrieve the provider's per-booking earnings with totals.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetEarningsResponse] "List of earnings"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	earnings, err := handler.service.Earnings(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get earnings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Earnings retrieved successfully")

	response.WithJSON(w, http.StatusOK, earnings)
}

// RequestPayout creates a payout request against available earnings.
// @Summary Request a payout
// @Description Request a payout of available earnings. Rejected when the amount exceeds the available balance.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body dto.RequestPayoutRequest true "Request Payout Request"
// @Success 201 {object} response.Data[dto.PayoutResponse] "Payout requested successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/payouts [post]
// @Security BearerAuth
func (handler *Handler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestPayout")
	defer scope.End()

	req := dto.RequestPayoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	payout, err := handler.service.RequestPayout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request payout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payout requested successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, payout)
}

// GetPayouts retrieves payout requests.
// @Summary Get payout requests
// @Description Retrieve the provider's payout requests, or all requests for admins.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPayoutsResponse] "List of payout requests"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/payouts [get]
// @Security BearerAuth
func (handler *Handler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayouts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	payouts, err := handler.service.Payouts(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payouts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payouts retrieved successfully")

	response.WithJSON(w, http.StatusOK, payouts)
}

// ReviewPayout approves or rejects a pending payout request.
// @Summary Review a payout request
// @Description Approve or reject a pending payout request. Reviewed requests cannot be re-reviewed.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param id path string true "Payout Request ID"
// @Param request body dto.ReviewPayoutRequest true "Review Payout Request"
// @Success 200 {object} response.Message "Payout reviewed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/payouts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) ReviewPayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewPayout")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReviewPayoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReviewPayout(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review payout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payout reviewed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payout reviewed successfully")
}

// RecordTopUp posts a credit top-up confirmed by the payment backoffice.
// @Summary Record a credit top-up
// @Description Post a confirmed credit purchase to a provider's wallet. Intended for internal callers authenticated by API key.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body dto.TopUpRequest true "Top Up Request"
// @Success 201 {object} response.Message "Top-up recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wallet/topups [post]
// @Security ApiKeyAuth
func (handler *Handler) RecordTopUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordTopUp")
	defer scope.End()

	req := dto.TopUpRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RecordTopUp(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record top-up")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Top-up recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Top-up recorded successfully")
}
