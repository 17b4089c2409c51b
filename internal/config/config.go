package config

import (
	"os"
	"strings"
	"time"

	"github.com/mammidi-vikram/netflix/pkg/database"
)

// Config holds the full service configuration, loaded from environment
// variables with local-development defaults.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	DB database.Config

	TMDBBaseURL string
	TMDBAPIKey  string
	TMDBTimeout time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	AllowedOrigins []string

	// Optional: empty values disable the corresponding integration
	RedisAddr    string
	KafkaBrokers []string
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "watchlist-service"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "watchlistdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		TMDBBaseURL:    getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBAPIKey:     getEnv("TMDB_API_KEY", ""),
		TMDBTimeout:    getDuration("TMDB_TIMEOUT", 10*time.Second),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		KafkaBrokers:   splitList(getEnv("KAFKA_BROKERS", "")),
	}
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
