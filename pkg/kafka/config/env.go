package kafka_config

const (
	// Kafka broker configuration. Publishing is disabled when no brokers are set.
	EnvKafkaBrokers = "KAFKA_BROKERS"

	EnvKafkaBookingTopic   = "KAFKA_BOOKING_TOPIC"
	EnvKafkaPublishTimeout = "KAFKA_PUBLISH_TIMEOUT"

	// Producer configuration
	EnvKafkaProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvKafkaProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvKafkaProducerCompression  = "KAFKA_PRODUCER_COMPRESSION"
	EnvKafkaProducerAsync        = "KAFKA_PRODUCER_ASYNC"
)
