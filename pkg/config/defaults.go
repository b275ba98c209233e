package config

import "time"

const (
	DefaultDatabaseName     = "cleaning_business"
	DefaultMongoConnTimeout = 10 * time.Second

	DefaultPort         = "8000"
	DefaultServiceTitle = "Cleaning Business"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultDotEnvFile   = ".env"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 35 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
