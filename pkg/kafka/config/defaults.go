package kafka_config

import "time"

const (
	DefaultKafkaBrokers = ""

	DefaultBookingTopic   = "booking-requests"
	DefaultPublishTimeout = 5 * time.Second

	// Producer defaults
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
)
