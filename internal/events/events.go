package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"lodge/config"
	"lodge/infras/kafka"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated        = "booking.created"
	TypeBookingCheckedIn      = "booking.checked_in"
	TypeBookingCheckedOut     = "booking.checked_out"
	TypeBookingCancelled      = "booking.cancelled"
	TypeServiceRequestCreated = "service_request.created"
	TypeServiceRequestUpdated = "service_request.updated"
)

// BookingEvent is the payload published on booking lifecycle changes.
type BookingEvent struct {
	Type      string  `json:"type"`
	BookingID string  `json:"booking_id"`
	RoomID    string  `json:"room_id"`
	GuestID   string  `json:"guest_id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total,omitempty"`
}

// ServiceRequestEvent is the payload published on service request changes.
type ServiceRequestEvent struct {
	Type        string `json:"type"`
	RequestID   string `json:"request_id"`
	RoomID      string `json:"room_id"`
	BookingID   string `json:"booking_id,omitempty"`
	RequestType string `json:"request_type"`
	Status      string `json:"status"`
}

type Publisher interface {
	PublishBooking(ctx context.Context, event BookingEvent)
	PublishServiceRequest(ctx context.Context, event ServiceRequestEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

// PublishBooking sends a booking event keyed by booking ID. Publish failures
// are logged and swallowed so event delivery never fails the request.
func (p *publisherImpl) PublishBooking(ctx context.Context, event BookingEvent) {
	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.Bookings, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("bookingID", event.BookingID).Msg("failed to publish booking event")
	}
}

// PublishServiceRequest sends a service request event keyed by request ID.
func (p *publisherImpl) PublishServiceRequest(ctx context.Context, event ServiceRequestEvent) {
	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.ServiceRequests, kafka.Message{
		Key:   event.RequestID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("requestID", event.RequestID).Msg("failed to publish service request event")
	}
}
