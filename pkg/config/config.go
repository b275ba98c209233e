package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"time"

	"cleanbook/pkg/client"
	kafka_config "cleanbook/pkg/kafka/config"
	"cleanbook/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	DatabaseName     string
	MongoConnTimeout time.Duration

	Port         string
	ServiceTitle string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Kafka *kafka_config.Config

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the optional .env file, then the environment. Invalid values
// stop the process; missing database settings do not.
func Load(serviceName string) *Config {
	dotEnvErr := loadDotEnv(getEnvStr(EnvDotEnvFile, DefaultDotEnvFile))

	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
		Format:    getEnvStr(EnvLogFormat, DefaultLogFormat),
		AddSource: true,
		Service:   serviceName,
	})

	if dotEnvErr != nil {
		cfg.Log.Warn("Failed to load .env file, continuing with process environment", "error", dotEnvErr)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv builds a Config from the environment without validating it or
// creating a logger.
func FromEnv() *Config {
	return &Config{
		DatabaseURL:      getEnvStr(EnvDatabaseURL, ""),
		DatabaseName:     getEnvStr(EnvDatabaseName, ""),
		MongoConnTimeout: getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port:         getEnvStr(EnvPort, DefaultPort),
		ServiceTitle: getEnvStr(EnvServiceTitle, DefaultServiceTitle),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Kafka: kafka_config.Load(),

		Client: client.NewClient(),
	}
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// DatabaseConfigured reports whether a connection string was provided.
func (cfg *Config) DatabaseConfigured() bool {
	return cfg.DatabaseURL != ""
}

// ResolvedDatabaseName is the database actually used for reads and writes.
func (cfg *Config) ResolvedDatabaseName() string {
	if cfg.DatabaseName == "" {
		return DefaultDatabaseName
	}
	return cfg.DatabaseName
}

// SetMongo connects to the configured database. The returned error is
// informational; callers keep serving without a store.
func (cfg *Config) SetMongo() error {
	if !cfg.DatabaseConfigured() {
		return fmt.Errorf("%s is not set", EnvDatabaseURL)
	}
	return cfg.Client.SetMongo(cfg.Log, cfg.DatabaseURL, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.ServiceTitle == "" {
		errors = append(errors, "ServiceTitle cannot be empty")
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	} else if cfg.WriteTimeout <= cfg.RequestTimeout {
		errors = append(errors, fmt.Sprintf("WriteTimeout (%s) must be greater than RequestTimeout (%s)", cfg.WriteTimeout, cfg.RequestTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.Kafka != nil {
		errors = append(errors, cfg.Kafka.Validate()...)
		// The event is published inside the request after the write.
		if cfg.Kafka.Enabled() && cfg.RequestTimeout > 0 && cfg.Kafka.PublishTimeout >= cfg.RequestTimeout {
			errors = append(errors, fmt.Sprintf("KafkaPublishTimeout (%s) must be less than RequestTimeout (%s)", cfg.Kafka.PublishTimeout, cfg.RequestTimeout))
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	fields := []any{
		"database_url", redactMongoURI(cfg.DatabaseURL),
		"database_name", cfg.ResolvedDatabaseName(),
		"database_name_set", cfg.DatabaseName != "",
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"service_title", cfg.ServiceTitle,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	}
	if cfg.Kafka != nil {
		fields = append(fields, cfg.Kafka.LogFields()...)
	}
	cfg.Log.Info("Configuration loaded successfully", fields...)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}
