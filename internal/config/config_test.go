package config

import (
	"testing"
	"time"

	"github.com/pitchside/matchsight/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.StoreConfigured() {
		t.Fatalf("empty DATABASE_URL must read as unconfigured store")
	}
	if cfg.RetryCount != 3 || cfg.RetryDelay != 500*time.Millisecond {
		t.Fatalf("unexpected retry defaults: %d %s", cfg.RetryCount, cfg.RetryDelay)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: %v %s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected default log level: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS defaults: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_StoreAndRetryOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DATABASE_URL", "postgres://localhost/matchsight")
	t.Setenv("RETRY_COUNT", "5")
	t.Setenv("RETRY_DELAY", "100ms")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.StoreConfigured() {
		t.Fatalf("expected configured store")
	}
	if cfg.RetryCount != 5 || cfg.RetryDelay != 100*time.Millisecond {
		t.Fatalf("unexpected retry settings: %d %s", cfg.RetryCount, cfg.RetryDelay)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid CACHE_TTL")
	}
}

func TestLoad_RejectsNegativeRetryCount(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RETRY_COUNT", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative RETRY_COUNT")
	}
}
