package events

import (
	"context"
	"fmt"
	"time"

	"cleanbook/pkg/kafka"
	"cleanbook/pkg/middleware"
	"cleanbook/pkg/model"
)

const (
	EventBookingRequested = "booking.requested"
	SchemaVersion         = "1"
)

// Publisher announces stored booking requests to downstream consumers.
type Publisher interface {
	BookingRequested(ctx context.Context, doc model.Document) error
	Close() error
}

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer producer
	source   string
	timeout  time.Duration
}

// NewKafkaPublisher publishes through p. Each publish gets its own deadline
// and outlives the caller's cancellation, so a client hanging up after the
// write does not drop the event.
func NewKafkaPublisher(p producer, source string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		producer: p,
		source:   source,
		timeout:  timeout,
	}
}

func (p *KafkaPublisher) BookingRequested(ctx context.Context, doc model.Document) error {
	if doc.ID() == "" {
		return fmt.Errorf("booking document has no id")
	}

	msg, err := kafka.NewMessage().
		WithKey(doc.ID()).
		WithValue(doc).
		WithEventType(EventBookingRequested).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		Build()
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", EventBookingRequested, err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) BookingRequested(context.Context, model.Document) error { return nil }

func (NoopPublisher) Close() error { return nil }
