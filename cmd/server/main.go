package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	kafkaEvents "github.com/snw/walletd/internal/adapter/events/kafka"
	httpAdapter "github.com/snw/walletd/internal/adapter/http"
	"github.com/snw/walletd/internal/adapter/http/handler"
	"github.com/snw/walletd/internal/adapter/http/middleware"
	postgresRepo "github.com/snw/walletd/internal/adapter/repository/postgres"
	redisRepo "github.com/snw/walletd/internal/adapter/repository/redis"
	"github.com/snw/walletd/internal/infrastructure/config"
	"github.com/snw/walletd/internal/infrastructure/logger"
	"github.com/snw/walletd/internal/infrastructure/postgres"
	"github.com/snw/walletd/internal/infrastructure/redis"
	"github.com/snw/walletd/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis only when idempotency is enabled
	var redisClient *goredis.Client
	var idempotencyStore usecase.IdempotencyStore
	if cfg.IdempotencyEnabled {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("connected to redis")
	}

	// Batch events are a no-op unless brokers are configured
	var publisher usecase.EventPublisher = kafkaEvents.NewNullPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafkaEvents.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka publisher enabled")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	walletRepo := postgresRepo.NewWalletRepository(pool, cfg.LockTimeout)
	recordRepo := postgresRepo.NewRecordRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	walletUC := usecase.NewWalletUseCase(txManager, walletRepo, recordRepo, idGen, publisher)
	recordUC := usecase.NewRecordUseCase(txManager, recordRepo, idGen, retrier)

	// Initialize handlers
	walletHandler := handler.NewWalletHandler(walletUC)
	recordHandler := handler.NewRecordHandler(recordUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WalletHandler:    walletHandler,
		RecordHandler:    recordHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
	})

	loggingMiddleware := middleware.NewLoggingMiddleware(log.Logger)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      loggingMiddleware.Wrap(router),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
