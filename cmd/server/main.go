package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/mammidi-vikram/netflix/internal/config"
	"github.com/mammidi-vikram/netflix/internal/middleware"
	moviesclient "github.com/mammidi-vikram/netflix/internal/movies/client"
	movieshttp "github.com/mammidi-vikram/netflix/internal/movies/delivery/http"
	"github.com/mammidi-vikram/netflix/internal/user"
	userrepo "github.com/mammidi-vikram/netflix/internal/user/repository"
	"github.com/mammidi-vikram/netflix/internal/watchlist"
	watchlistrepo "github.com/mammidi-vikram/netflix/internal/watchlist/repository"
	"github.com/mammidi-vikram/netflix/kafka"
	"github.com/mammidi-vikram/netflix/pkg/auth"
	"github.com/mammidi-vikram/netflix/pkg/database"
	"github.com/mammidi-vikram/netflix/pkg/logger"
	"github.com/mammidi-vikram/netflix/pkg/ratelimit"
	"github.com/mammidi-vikram/netflix/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting watchlist service")

	// Tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Database
	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Raw connection for the health check ping
	sqlDB, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open raw database connection")
	}
	defer sqlDB.Close()

	if err := userrepo.NewGormUserRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run user migrations")
	}
	if err := watchlistrepo.NewGormWatchlistRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run watchlist migrations")
	}

	// Kafka is optional: no brokers, no events
	var events *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		events, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events disabled")
			events = nil
		} else {
			defer events.Close()
		}
	}

	// Redis is optional: no address, no rate limiting
	var limiter *ratelimit.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewRateLimiter(redisClient, 20, time.Minute)
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Auth rate limiting enabled")
	}

	tokens := auth.NewJWT(cfg.JWTSecret, cfg.JWTTTL)

	userHandler, err := user.InitializeHTTPHandler(db, tokens, events)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	watchlistHandler, err := watchlist.InitializeHTTPHandler(db, tokens, events)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize watchlist handler")
	}

	tmdb := moviesclient.NewTMDBClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, cfg.TMDBTimeout)
	movieHandler := movieshttp.NewMovieHandler(tmdb)

	// Router
	router := mux.NewRouter()
	router.Use(middleware.Logging)
	router.Use(func(next http.Handler) http.Handler {
		return middleware.Tracing("http-request", next)
	})

	// Watchlist routes first: /api/user/watchlist must win over /api/user/{id}
	watchlistHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router, limiter)
	movieHandler.RegisterRoutes(router)

	userHandler.RegisterHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      c.Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}
