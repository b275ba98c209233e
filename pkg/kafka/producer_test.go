package kafka

import (
	"context"
	"errors"
	"testing"

	kafka_config "cleanbook/pkg/kafka/config"
	"cleanbook/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  int
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func buildMessage(t *testing.T) Message {
	t.Helper()
	msg, err := NewMessage().
		WithKey("65f1c0ffee00000000000001").
		WithValue(map[string]any{"name": "Ada"}).
		WithEventType("booking.requested").
		Build()
	require.NoError(t, err)
	return msg
}

func TestNewProducer_Validation(t *testing.T) {
	log := logger.Discard()

	_, err := NewProducer(nil, "bookings", log)
	assert.Error(t, err)

	_, err = NewProducer(&kafka_config.Config{}, "bookings", log)
	assert.Error(t, err, "no brokers")

	_, err = NewProducer(&kafka_config.Config{Brokers: []string{"localhost:9092"}}, "", log)
	assert.Error(t, err, "empty topic")

	p, err := NewProducer(&kafka_config.Config{
		Brokers:             []string{"localhost:9092"},
		ProducerMaxAttempts: 3,
		ProducerCompression: "gzip",
	}, "bookings", log)
	require.NoError(t, err)
	assert.Equal(t, "bookings", p.Topic())
	assert.NoError(t, p.Close())
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "booking-requests")

	msg := buildMessage(t)
	require.NoError(t, p.Publish(context.Background(), msg))

	require.Len(t, w.written, 1)
	assert.Equal(t, "65f1c0ffee00000000000001", string(w.written[0].Key))
	assert.JSONEq(t, `{"name":"Ada"}`, string(w.written[0].Value))

	headers := map[string]string{}
	for _, h := range w.written[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "booking.requested", headers[HeaderEventType])
	assert.NotEmpty(t, headers[HeaderEventID])
	assert.NotEmpty(t, headers[HeaderTimestamp])
}

func TestProducer_PublishRejectsInvalidMessages(t *testing.T) {
	p := newProducer(&fakeWriter{}, "booking-requests")

	assert.ErrorIs(t, p.Publish(context.Background(), Message{Value: []byte("{}")}), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k"}), ErrEmptyValue)
}

func TestProducer_PublishWriteError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	p := newProducer(&fakeWriter{err: cause}, "booking-requests")

	err := p.Publish(context.Background(), buildMessage(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorTypeTransient, ClassifyError(err))
}

func TestProducer_Middleware(t *testing.T) {
	p := newProducer(&fakeWriter{}, "booking-requests")

	var order []string
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		order = append(order, "first:"+msg.Topic)
		return next(ctx, msg)
	})
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		order = append(order, "second")
		return next(ctx, msg)
	})

	require.NoError(t, p.Publish(context.Background(), buildMessage(t)))
	assert.Equal(t, []string{"first:booking-requests", "second"}, order)
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "booking-requests")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closed)

	assert.ErrorIs(t, p.Publish(context.Background(), buildMessage(t)), ErrProducerClosed)
}

func TestWriterSettings(t *testing.T) {
	assert.Equal(t, compress.Gzip, compression("gzip"))
	assert.Equal(t, compress.Snappy, compression("unknown"))
	assert.Equal(t, compress.Compression(0), compression("none"))

	assert.Equal(t, kafka.RequireAll, requiredAcks(-1))
	assert.Equal(t, kafka.RequireNone, requiredAcks(0))
	assert.Equal(t, kafka.RequireOne, requiredAcks(1))
}
