package dto

import (
	"handy/internal/domains/booking/model"
	"handy/shared"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/timezone"
	"time"
)

type BookingLine struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gte=1,lte=20"`
}

type CreateBookingRequest struct {
	AddressID   string        `json:"address_id"   validate:"required,uuid"`
	ProviderID  string        `json:"provider_id"  validate:"omitempty,uuid"`
	ScheduledAt string        `json:"scheduled_at" validate:"required"`
	Notes       string        `json:"notes"        validate:"omitempty,max=500"`
	Services    []BookingLine `json:"services"     validate:"required,min=1,max=10,dive"`
}

func (c *CreateBookingRequest) ParseScheduledAt() (time.Time, error) {
	return timezone.Parse(constant.DateFormat, c.ScheduledAt)
}

func (c *CreateBookingRequest) ServiceIDs() []string {
	ids := make([]string, len(c.Services))
	for i, line := range c.Services {
		ids[i] = line.ServiceID
	}

	return ids
}

type BookingLineResponse struct {
	ServiceID string  `json:"service_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type BookingResponse struct {
	ID          string                `json:"id"`
	CustomerID  string                `json:"customer_id"`
	ProviderID  string                `json:"provider_id,omitempty"`
	AddressID   string                `json:"address_id"`
	Status      string                `json:"status"`
	ScheduledAt string                `json:"scheduled_at"`
	TotalPrice  float64               `json:"total_price"`
	Notes       string                `json:"notes,omitempty"`
	Services    []BookingLineResponse `json:"services,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.AddressID = model.AddressID
	r.Status = model.Status
	r.ScheduledAt = timezone.Format(model.ScheduledAt, constant.DateFormat)
	r.TotalPrice = model.TotalPrice
	r.Notes = model.Notes

	if model.Assigned() {
		r.ProviderID = model.ProviderID.String
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) WithServices(lines []model.BookingService) {
	r.Services = make([]BookingLineResponse, len(lines))
	for i, line := range lines {
		r.Services[i] = BookingLineResponse{
			ServiceID: line.ServiceID,
			Price:     line.Price,
			Quantity:  line.Quantity,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

type AssignProviderRequest struct {
	ProviderID string `json:"provider_id" validate:"required,uuid"`
}

type JobResponse struct {
	BookingID   string   `json:"booking_id"`
	ScheduledAt string   `json:"scheduled_at"`
	TotalPrice  float64  `json:"total_price"`
	DistanceKm  float64  `json:"distance_km"`
	ServiceIDs  []string `json:"service_ids"`
}

type GetJobsResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	TotalData int           `json:"total_data"`
}

type RecentClientResponse struct {
	CustomerID    string `json:"customer_id"`
	Bookings      int    `json:"bookings"`
	LastBookingAt string `json:"last_booking_at"`
}

type GetRecentClientsResponse struct {
	Clients []RecentClientResponse `json:"clients"`
}

func (r *GetRecentClientsResponse) FromModels(models []model.RecentClient) {
	r.Clients = make([]RecentClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i] = RecentClientResponse{
			CustomerID:    mod.CustomerID,
			Bookings:      mod.Bookings,
			LastBookingAt: timezone.Format(mod.LastBookingAt, constant.DateFormat),
		}
	}
}
