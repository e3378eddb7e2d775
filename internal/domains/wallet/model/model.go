package model

import (
	"database/sql"
	"handy/shared/model"
)

const (
	LedgerTableName  = "credit_transactions"
	LedgerEntityName = "creditTransaction"

	EarningTableName  = "provider_earnings"
	EarningEntityName = "providerEarning"

	PayoutTableName  = "payout_requests"
	PayoutEntityName = "payoutRequest"

	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldID         = "id"
	FieldProviderID = "provider_id"
	FieldBookingID  = "booking_id"
	FieldAmount     = "amount"
	FieldEntryType  = "entry_type"
	FieldReference  = "reference"
	FieldStatus     = "status"
)

// CreditTransaction is one immutable ledger entry. The provider's credit
// balance is always the sum of its entries.
type CreditTransaction struct {
	ID         string `db:"id"`
	ProviderID string `db:"provider_id"`
	Amount     int    `db:"amount"`
	EntryType  string `db:"entry_type"`
	Reference  string `db:"reference"`
	model.Metadata
}

// ProviderEarning records money owed to a provider for one completed booking.
type ProviderEarning struct {
	ID         string  `db:"id"`
	ProviderID string  `db:"provider_id"`
	BookingID  string  `db:"booking_id"`
	Amount     float64 `db:"amount"`
	model.Metadata
}

type PayoutRequest struct {
	ID         string         `db:"id"`
	ProviderID string         `db:"provider_id"`
	Amount     float64        `db:"amount"`
	Status     string         `db:"status"`
	ReviewedBy sql.NullString `db:"reviewed_by"`
	model.Metadata
}

type Payment struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Amount    float64 `db:"amount"`
	Provider  string  `db:"provider"`
	Status    string  `db:"status"`
	model.Metadata
}

const (
	PaymentStatusCompleted = "completed"
)
