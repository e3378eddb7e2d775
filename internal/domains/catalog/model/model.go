package model

import (
	"database/sql"
	"handy/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldBasePrice   = "base_price"
	FieldActive      = "active"
)

const (
	ProviderServiceTableName  = "provider_services"
	ProviderServiceEntityName = "providerService"

	FieldProviderID  = "provider_id"
	FieldServiceID   = "service_id"
	FieldCustomPrice = "custom_price"
)

type Service struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	Description string  `db:"description"`
	BasePrice   float64 `db:"base_price"`
	Active      bool    `db:"active"`
	model.Metadata
}

type ProviderService struct {
	ID          string          `db:"id"`
	ProviderID  string          `db:"provider_id"`
	ServiceID   string          `db:"service_id"`
	CustomPrice sql.NullFloat64 `db:"custom_price"`
	model.Metadata
}

// ResolvedPrice is the effective unit price of a service for one booking.
// For direct bookings the provider's custom price, when set, overrides the
// catalog base price.
type ResolvedPrice struct {
	ServiceID   string          `db:"id"`
	BasePrice   float64         `db:"base_price"`
	CustomPrice sql.NullFloat64 `db:"custom_price"`
}

func (p ResolvedPrice) Effective() float64 {
	if p.CustomPrice.Valid {
		return p.CustomPrice.Float64
	}

	return p.BasePrice
}
