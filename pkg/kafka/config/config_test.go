package kafka_config

import (
	"testing"
	"time"
)

func TestLoad_DisabledByDefault(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "")

	cfg := Load()
	if cfg.Enabled() {
		t.Errorf("expected publishing to be disabled without brokers")
	}
	if problems := cfg.Validate(); problems != nil {
		t.Errorf("disabled config should always be valid, got %v", problems)
	}
	if cfg.BookingTopic != DefaultBookingTopic {
		t.Errorf("topic = %q, want %q", cfg.BookingTopic, DefaultBookingTopic)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, " kafka-1:9092, kafka-2:9092 ")
	t.Setenv(EnvKafkaBookingTopic, "bookings.v1")
	t.Setenv(EnvKafkaPublishTimeout, "750ms")
	t.Setenv(EnvKafkaProducerAsync, "true")

	cfg := Load()

	if len(cfg.Brokers) != 2 || cfg.Brokers[0] != "kafka-1:9092" || cfg.Brokers[1] != "kafka-2:9092" {
		t.Errorf("brokers = %v", cfg.Brokers)
	}
	if cfg.BookingTopic != "bookings.v1" {
		t.Errorf("topic = %q", cfg.BookingTopic)
	}
	if cfg.PublishTimeout != 750*time.Millisecond {
		t.Errorf("publish timeout = %s", cfg.PublishTimeout)
	}
	if !cfg.ProducerAsync {
		t.Errorf("expected async producer")
	}
	if problems := cfg.Validate(); len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
}

func TestValidate_CollectsProblems(t *testing.T) {
	cfg := &Config{
		Brokers:              []string{"kafka-1:9092", ""},
		BookingTopic:         "",
		PublishTimeout:       0,
		ProducerMaxAttempts:  0,
		ProducerBatchTimeout: time.Millisecond,
		ProducerRequireAcks:  2,
		ProducerCompression:  "brotli",
	}

	if problems := cfg.Validate(); len(problems) != 6 {
		t.Errorf("expected 6 problems, got %d: %v", len(problems), problems)
	}
}
