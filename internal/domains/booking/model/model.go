package model

import (
	"database/sql"
	"handy/shared/constant"
	"handy/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldProviderID  = "provider_id"
	FieldAddressID   = "address_id"
	FieldStatus      = "status"
	FieldScheduledAt = "scheduled_at"
	FieldTotalPrice  = "total_price"
)

const (
	ServiceTableName  = "booking_services"
	ServiceEntityName = "bookingService"

	FieldBookingID = "booking_id"
	FieldServiceID = "service_id"
	FieldPrice     = "price"
	FieldQuantity  = "quantity"
)

type Booking struct {
	ID          string         `db:"id"`
	CustomerID  string         `db:"customer_id"`
	ProviderID  sql.NullString `db:"provider_id"`
	AddressID   string         `db:"address_id"`
	Status      string         `db:"status"`
	ScheduledAt time.Time      `db:"scheduled_at"`
	TotalPrice  float64        `db:"total_price"`
	Notes       string         `db:"notes"`
	model.Metadata
}

// BookingService is one priced line item of a booking. Price is the unit
// price frozen at creation time; later catalog changes never affect it.
type BookingService struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	ServiceID string  `db:"service_id"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
	model.Metadata
}

// OpenJob is a pending unclaimed booking joined with its address coordinates
// and requested service ids, as read from the job pool query.
type OpenJob struct {
	ID          string         `db:"id"`
	CustomerID  string         `db:"customer_id"`
	AddressID   string         `db:"address_id"`
	ScheduledAt time.Time      `db:"scheduled_at"`
	TotalPrice  float64        `db:"total_price"`
	Latitude    float64        `db:"latitude"`
	Longitude   float64        `db:"longitude"`
	ServiceIDs  pq.StringArray `db:"service_ids"`
	CreatedAt   time.Time      `db:"created_at"`
}

// RecentClient summarizes a provider's history with one customer.
type RecentClient struct {
	CustomerID    string    `db:"customer_id"`
	Bookings      int       `db:"bookings"`
	LastBookingAt time.Time `db:"last_booking_at"`
}

// Lifecycle moves forward only: a settled or cancelled booking never
// re-enters the pipeline.
var transitions = map[string][]string{
	constant.BookingStatusPending:  {constant.BookingStatusAccepted, constant.BookingStatusCancelled},
	constant.BookingStatusAccepted: {constant.BookingStatusCompleted, constant.BookingStatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// Assigned reports whether a provider holds this booking.
func (b Booking) Assigned() bool {
	return b.ProviderID.Valid && b.ProviderID.String != ""
}
