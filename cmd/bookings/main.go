package main

import (
	"cleanbook/internal/bookings/events"
	"cleanbook/internal/bookings/handler"
	"cleanbook/internal/bookings/repository"
	"cleanbook/internal/bookings/service"
	"cleanbook/internal/bookings/validator"
	"cleanbook/pkg/app"
	"cleanbook/pkg/config"
	"cleanbook/pkg/contracts"
	mongostore "cleanbook/pkg/db/mongo"
	"cleanbook/pkg/kafka"
	kafka_middleware "cleanbook/pkg/kafka/middleware"
	"cleanbook/pkg/model"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Bookings service")
	store := initStore(cfg)
	publisher := initPublisher(cfg)

	var (
		docs      contracts.DocumentStore
		inspector contracts.StoreInspector
	)
	if store != nil {
		docs = store
		inspector = store
	}

	bookingService := service.NewBookingService(
		repository.NewBookingRepository(docs),
		publisher,
		cfg.Log,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(inspector, cfg.Log),
		handler.NewRootHandler(cfg.ServiceTitle, cfg.Log),
		handler.NewBookingHandler(bookingService, validator.NewBookingValidator(cfg.Log), cfg.Log),
		handler.NewDiagnosticsHandler(inspector, handler.DiagnosticsEnv{
			DatabaseURLKey:  config.EnvDatabaseURL,
			DatabaseNameKey: config.EnvDatabaseName,
		}, cfg.Log),
		handler.NewSchemaHandler(model.Definitions(), cfg.Log),
	)
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}

// initStore returns nil when the database is not configured or unreachable;
// the service still starts and reports the missing store through /test.
func initStore(cfg *config.Config) *mongostore.DocumentStore {
	if err := cfg.SetMongo(); err != nil {
		cfg.Log.Warn("Database unavailable, serving without a store", "error", err)
		return nil
	}

	store := mongostore.NewDocumentStore(
		cfg.Client.Mongo.Database(cfg.ResolvedDatabaseName()),
		mongostore.WithOperationTimeout(cfg.RequestTimeout),
	)
	cfg.Log.Info("Document store initialized", "database", store.DatabaseName())
	return store
}

func initPublisher(cfg *config.Config) events.Publisher {
	if cfg.Kafka == nil || !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NoopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Kafka.BookingTopic, cfg.Log)
	if err != nil {
		cfg.Log.Warn("Failed to create Kafka producer, booking events disabled", "error", err)
		return events.NoopPublisher{}
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	cfg.Log.Info("Booking events enabled", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer, ServiceName, cfg.Kafka.PublishTimeout)
}
