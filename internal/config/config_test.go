package config_test

import (
	"testing"
	"time"

	"github.com/mammidi-vikram/netflix/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.Environment != "development" || !cfg.IsDevelopment() {
		t.Errorf("expected development defaults, got %q", cfg.Environment)
	}
	if cfg.TMDBBaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDBBaseURL = %q", cfg.TMDBBaseURL)
	}
	if cfg.TMDBTimeout != 10*time.Second {
		t.Errorf("TMDBTimeout = %v, want 10s", cfg.TMDBTimeout)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v, want 24h", cfg.JWTTTL)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != "5432" {
		t.Errorf("unexpected DB defaults: %+v", cfg.DB)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr should default to disabled, got %q", cfg.RedisAddr)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("KafkaBrokers should default to disabled, got %v", cfg.KafkaBrokers)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("TMDB_TIMEOUT", "3s")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg := config.Load()

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.IsDevelopment() {
		t.Error("production config reports development")
	}
	if cfg.TMDBTimeout != 3*time.Second {
		t.Errorf("TMDBTimeout = %v, want 3s", cfg.TMDBTimeout)
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("JWTTTL = %v, want 1h", cfg.JWTTTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "broker1:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("TMDB_TIMEOUT", "not-a-duration")

	cfg := config.Load()
	if cfg.TMDBTimeout != 10*time.Second {
		t.Errorf("TMDBTimeout = %v, want default 10s", cfg.TMDBTimeout)
	}
}
