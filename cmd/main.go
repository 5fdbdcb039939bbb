package main

import (
	"context"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/duynhne/bookstore-service/config"
	"github.com/duynhne/bookstore-service/internal/core/repository"
	"github.com/duynhne/bookstore-service/internal/logger"
	logicv1 "github.com/duynhne/bookstore-service/internal/logic/v1"
	webv1 "github.com/duynhne/bookstore-service/internal/web/v1"
	"github.com/duynhne/bookstore-service/middleware"
)

// tracerShutdown is the part of the tracer provider main needs at exit.
type tracerShutdown interface{ Shutdown(context.Context) error }

// setupTracing initializes tracing when enabled. It returns nil unless
// init succeeded, so the shutdown guard at exit never holds a typed-nil
// provider.
func setupTracing(cfg *config.Config, init func(*config.Config) (*sdktrace.TracerProvider, error)) tracerShutdown {
	if !cfg.Tracing.Enabled {
		log.Info().Msg("Tracing disabled (TRACING_ENABLED=false)")
		return nil
	}

	tp, err := init(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize tracing")
		return nil
	}

	log.Info().
		Str("endpoint", cfg.Tracing.Endpoint).
		Float64("sample_rate", cfg.Tracing.SampleRate).
		Msg("Tracing initialized")
	return tp
}

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic("Configuration validation failed: " + err.Error())
	}

	// Initialize Zerolog with LOG_LEVEL from config
	logger.Setup(cfg.Logging.Level)

	log.Info().
		Str("service", cfg.Service.Name).
		Str("version", cfg.Service.Version).
		Str("env", cfg.Service.Env).
		Str("port", cfg.Service.Port).
		Msg("Service starting")

	// Initialize OpenTelemetry tracing
	tp := setupTracing(cfg, middleware.InitTracing)

	// Initialize Pyroscope profiling
	if cfg.Profiling.Enabled {
		if err := middleware.InitProfiling(cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize profiling")
		} else {
			log.Info().
				Str("endpoint", cfg.Profiling.Endpoint).
				Msg("Profiling initialized")
			defer middleware.StopProfiling()
		}
	} else {
		log.Info().Msg("Profiling disabled (PROFILING_ENABLED=false)")
	}

	// In-memory stores: book catalog seeded at start, empty user registry
	// and session store. State lives for the process lifetime only.
	books := repository.NewBookRepository(repository.SeedCatalog(), cfg.Catalog.FetchDelay)
	users := repository.NewUserRepository()
	sessions := repository.NewSessionStore()
	log.Info().Msg("In-memory stores initialized")

	// Logic layer
	tokens := logicv1.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	catalog := logicv1.NewCatalogService(books, users)
	auth := logicv1.NewAuthService(users, sessions, tokens)
	reviews := logicv1.NewReviewService(books)

	r := gin.Default()

	var isShuttingDown atomic.Bool

	// Tracing middleware
	r.Use(middleware.TracingMiddleware())

	// Logging middleware
	r.Use(middleware.LoggingMiddleware())

	// Prometheus middleware
	r.Use(middleware.PrometheusMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness check
	// Returns 503 once shutdown has started, to drain traffic before HTTP shutdown.
	r.GET("/ready", func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Bookstore API: public catalog at the root, login and the
	// session-gated review operations under /customer.
	handler := webv1.NewHandler(catalog, auth, reviews, cfg.Auth.SessionCookie)
	handler.RegisterPublicRoutes(r)

	authMW := middleware.NewAuthMiddleware(sessions, tokens, cfg.Auth.SessionCookie)
	handler.RegisterCustomerRoutes(r.Group("/customer"), authMW)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Service.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Service.Port).Msg("Starting bookstore service")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	// Fail readiness first and wait for propagation, so load balancers
	// stop routing before the HTTP server shuts down.
	isShuttingDown.Store(true)
	drainDelay := cfg.GetReadinessDrainDelayDuration()
	if drainDelay > 0 {
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay started")
		time.Sleep(drainDelay)
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay completed")
	}

	// Shutdown context with configurable timeout
	shutdownTimeout := cfg.GetShutdownTimeoutDuration()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down server...")

	// 1. Shutdown HTTP server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		log.Info().Msg("HTTP server shutdown complete")
	}

	// 2. Shutdown tracer
	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Tracer shutdown error")
		} else {
			log.Info().Msg("Tracer shutdown complete")
		}
	}

	log.Info().Msg("Graceful shutdown complete")
}
