package model

import (
	"database/sql"
	"handy/shared/model"
)

const (
	TableName  = "addresses"
	EntityName = "address"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldLabel      = "label"
	FieldLine1      = "line1"
	FieldCity       = "city"
	FieldPostalCode = "postal_code"
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
)

type Address struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Label      string          `db:"label"`
	Line1      string          `db:"line1"`
	City       string          `db:"city"`
	PostalCode string          `db:"postal_code"`
	Latitude   sql.NullFloat64 `db:"latitude"`
	Longitude  sql.NullFloat64 `db:"longitude"`
	model.Metadata
}

// Geocoded reports whether the address carries usable coordinates.
func (a Address) Geocoded() bool {
	return a.Latitude.Valid && a.Longitude.Valid
}
