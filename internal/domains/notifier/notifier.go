package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"handy/config"
	"handy/infras/kafka"
	"handy/shared/timezone"
	"time"
)

// JobEvent is published when a booking enters or leaves the open job pool.
type JobEvent struct {
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	ProviderID  string    `json:"provider_id,omitempty"`
	ServiceIDs  []string  `json:"service_ids,omitempty"`
	Latitude    float64   `json:"latitude,omitempty"`
	Longitude   float64   `json:"longitude,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingEvent is published on booking lifecycle transitions.
type BookingEvent struct {
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier fans booking lifecycle events out to the message bus. Deliveries
// are best effort; a failed publish never fails the request that caused it.
type Notifier interface {
	JobAvailable(ctx context.Context, event JobEvent) error
	JobTaken(ctx context.Context, event JobEvent) error
	BookingStatusChanged(ctx context.Context, event BookingEvent) error
}

type notifierImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func New(client kafka.Client, cfg *config.Config) Notifier {
	return &notifierImpl{
		client: client,
		cfg:    cfg,
	}
}

func (n *notifierImpl) JobAvailable(ctx context.Context, event JobEvent) error {
	event.OccurredAt = timezone.Now()

	return n.send(ctx, n.cfg.Kafka.Topics.JobEvents, "job.available:"+event.BookingID, event)
}

func (n *notifierImpl) JobTaken(ctx context.Context, event JobEvent) error {
	event.OccurredAt = timezone.Now()

	return n.send(ctx, n.cfg.Kafka.Topics.JobEvents, "job.taken:"+event.BookingID, event)
}

func (n *notifierImpl) BookingStatusChanged(ctx context.Context, event BookingEvent) error {
	event.OccurredAt = timezone.Now()

	return n.send(ctx, n.cfg.Kafka.Topics.BookingEvents, "booking."+event.Status+":"+event.BookingID, event)
}

func (n *notifierImpl) send(ctx context.Context, topic, key string, value any) error {
	err := n.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}

	return nil
}
