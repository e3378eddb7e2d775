package dto

import (
	"handy/internal/domains/wallet/model"
	"handy/shared"
	gDto "handy/shared/dto"
)

type TransactionResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Amount     int    `json:"amount"`
	EntryType  string `json:"entry_type"`
	Reference  string `json:"reference,omitempty"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(model model.CreditTransaction) {
	r.ID = model.ID
	r.ProviderID = model.ProviderID
	r.Amount = model.Amount
	r.EntryType = model.EntryType
	r.Reference = model.Reference
	r.Metadata.FromModel(model.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.CreditTransaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}

type EarningResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	gDto.Metadata
}

func (r *EarningResponse) FromModel(model model.ProviderEarning) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Metadata.FromModel(model.Metadata)
}

type GetEarningsResponse struct {
	Earnings  []EarningResponse `json:"earnings"`
	Total     float64           `json:"total"`
	Available float64           `json:"available"`
}

func (r *GetEarningsResponse) FromModels(models []model.ProviderEarning, total, available float64) {
	r.Total = total
	r.Available = available

	r.Earnings = make([]EarningResponse, len(models))
	for i, mod := range models {
		r.Earnings[i].FromModel(mod)
	}
}

type BalanceResponse struct {
	Credits   int     `json:"credits"`
	Available float64 `json:"available"`
}

type RequestPayoutRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type PayoutResponse struct {
	ID         string  `json:"id"`
	ProviderID string  `json:"provider_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	ReviewedBy string  `json:"reviewed_by,omitempty"`
	gDto.Metadata
}

func (r *PayoutResponse) FromModel(model model.PayoutRequest) {
	r.ID = model.ID
	r.ProviderID = model.ProviderID
	r.Amount = model.Amount
	r.Status = model.Status

	if model.ReviewedBy.Valid {
		r.ReviewedBy = model.ReviewedBy.String
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPayoutsResponse struct {
	Payouts   []PayoutResponse `json:"payouts"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetPayoutsResponse) FromModels(models []model.PayoutRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payouts = make([]PayoutResponse, len(models))
	for i, mod := range models {
		r.Payouts[i].FromModel(mod)
	}
}

type ReviewPayoutRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type TopUpRequest struct {
	ProviderID string `json:"provider_id" validate:"required,uuid"`
	Amount     int    `json:"amount"      validate:"required,gt=0"`
	Reference  string `json:"reference"   validate:"omitempty,max=100"`
}
