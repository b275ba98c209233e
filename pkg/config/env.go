package config

const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvDatabaseName     = "DATABASE_NAME"
	EnvMongoConnTimeout = "MONGO_CONN_TIMEOUT"

	EnvPort         = "PORT"
	EnvServiceTitle = "SERVICE_TITLE"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvDotEnvFile   = "DOTENV_FILE"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
