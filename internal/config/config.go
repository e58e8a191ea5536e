package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pitchside/matchsight/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service. An empty DBURL is a
// supported mode: the service runs entirely on static reference data.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string

	DBURL                string
	DBCircuitEnabled     bool
	DBCircuitFailures    int
	DBCircuitOpenTimeout time.Duration

	CacheEnabled bool
	CacheTTL     time.Duration

	RetryCount int
	RetryDelay time.Duration

	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	retryCount, err := getEnvAsInt("RETRY_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse RETRY_COUNT: %w", err)
	}
	if retryCount < 0 {
		return Config{}, fmt.Errorf("RETRY_COUNT must be >= 0")
	}
	retryDelay, err := time.ParseDuration(getEnv("RETRY_DELAY", "500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RETRY_DELAY: %w", err)
	}
	if retryDelay <= 0 {
		return Config{}, fmt.Errorf("RETRY_DELAY must be > 0")
	}

	dbCircuitEnabled, err := strconv.ParseBool(getEnv("DB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CIRCUIT_ENABLED: %w", err)
	}
	dbCircuitFailures, err := getEnvAsInt("DB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if dbCircuitFailures <= 0 {
		return Config{}, fmt.Errorf("DB_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	dbCircuitOpenTimeout, err := time.ParseDuration(getEnv("DB_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("HTTP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}

	return Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("SERVICE_NAME", "matchsight"),
		ServiceVersion:       getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DBURL:                strings.TrimSpace(getEnv("DATABASE_URL", "")),
		DBCircuitEnabled:     dbCircuitEnabled,
		DBCircuitFailures:    dbCircuitFailures,
		DBCircuitOpenTimeout: dbCircuitOpenTimeout,
		CacheEnabled:         cacheEnabled,
		CacheTTL:             cacheTTL,
		RetryCount:           retryCount,
		RetryDelay:           retryDelay,
		CORSAllowedOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:          readTimeout,
		WriteTimeout:         writeTimeout,
		ShutdownTimeout:      shutdownTimeout,
		LogLevel:             parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

// StoreConfigured reports whether a database is wired in at all.
func (c Config) StoreConfigured() bool {
	return c.DBURL != ""
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
