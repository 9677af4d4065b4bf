package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr  string
	LogLevel  string
	LogFormat string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32
	DBSchema    string

	// If true:
	// - /readyz returns 503 unless DB is configured and reachable.
	ReadinessRequireDB bool

	// If true, /metrics is registered.
	MetricsEnabled bool
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr:  EnvString("ACCOUNTD_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel:  EnvString("ACCOUNTD_LOG_LEVEL", "info"),
		LogFormat: EnvString("ACCOUNTD_LOG_FORMAT", "json"),

		ReadHeaderTimeout: EnvDuration("ACCOUNTD_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("ACCOUNTD_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("ACCOUNTD_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("ACCOUNTD_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("ACCOUNTD_HTTP_MAX_HEADER_BYTES", 1<<20),

		DatabaseURL: EnvString("ACCOUNTD_DATABASE_URL", ""),
		DBMaxConns:  EnvInt32("ACCOUNTD_DB_MAX_CONNS", 10),
		DBMinConns:  EnvInt32("ACCOUNTD_DB_MIN_CONNS", 0),
		DBSchema:    EnvString("ACCOUNTD_DB_SCHEMA", "accounts"),

		ReadinessRequireDB: EnvBool("ACCOUNTD_READINESS_REQUIRE_DB", false),

		MetricsEnabled: EnvBool("ACCOUNTD_METRICS_ENABLED", true),
	}
}
