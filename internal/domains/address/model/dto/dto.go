package dto

import (
	"handy/internal/domains/address/model"
	gDto "handy/shared/dto"
	gModel "handy/shared/model"
	"handy/shared/timezone"

	"github.com/google/uuid"
)

type CreateAddressRequest struct {
	Label      string   `json:"label"       validate:"required,max=50"`
	Line1      string   `json:"line1"       validate:"required,max=200"`
	City       string   `json:"city"        validate:"required,max=100"`
	PostalCode string   `json:"postal_code" validate:"omitempty,max=20"`
	Latitude   *float64 `json:"latitude"    validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude"   validate:"omitempty,longitude"`
}

func (c *CreateAddressRequest) ToModel(userID string) model.Address {
	address := model.Address{
		ID:         uuid.NewString(),
		UserID:     userID,
		Label:      c.Label,
		Line1:      c.Line1,
		City:       c.City,
		PostalCode: c.PostalCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if c.Latitude != nil && c.Longitude != nil {
		address.Latitude.Valid = true
		address.Latitude.Float64 = *c.Latitude
		address.Longitude.Valid = true
		address.Longitude.Float64 = *c.Longitude
	}

	return address
}

type UpdateAddressRequest struct {
	Label      string `db:"label"       json:"label"       validate:"omitempty,max=50"`
	Line1      string `db:"line1"       json:"line1"       validate:"omitempty,max=200"`
	City       string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	PostalCode string `db:"postal_code" json:"postal_code" validate:"omitempty,max=20"`
}

type AddressResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Label      string   `json:"label"`
	Line1      string   `json:"line1"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	gDto.Metadata
}

func (r *AddressResponse) FromModel(model model.Address) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Label = model.Label
	r.Line1 = model.Line1
	r.City = model.City
	r.PostalCode = model.PostalCode

	if model.Geocoded() {
		lat := model.Latitude.Float64
		lon := model.Longitude.Float64
		r.Latitude = &lat
		r.Longitude = &lon
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetAddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
	TotalData int               `json:"total_data"`
}

func (r *GetAddressesResponse) FromModels(models []model.Address) {
	r.TotalData = len(models)

	r.Addresses = make([]AddressResponse, len(models))
	for i, mod := range models {
		r.Addresses[i].FromModel(mod)
	}
}
