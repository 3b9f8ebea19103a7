package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourorg/crypto-price-service/internal/client"
	"github.com/yourorg/crypto-price-service/internal/config"
	"github.com/yourorg/crypto-price-service/internal/handler"
	"github.com/yourorg/crypto-price-service/internal/middleware"
	"github.com/yourorg/crypto-price-service/internal/repository"
	"github.com/yourorg/crypto-price-service/internal/scheduler"
	"github.com/yourorg/crypto-price-service/internal/service"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := connectToDB(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository and ensure the schema exists
	priceRepo := repository.NewPriceRepository(db, logger)
	if err := priceRepo.InitSchema(context.Background()); err != nil {
		logger.Fatal("Failed to initialize database schema", zap.Error(err))
	}

	// Initialize the exchange client
	deribitClient := client.NewDeribitClient(logger,
		client.WithBaseURL(cfg.Deribit.URL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Deribit.Timeout}),
	)

	probeCtx, cancelProbe := context.WithTimeout(context.Background(), cfg.Deribit.Timeout)
	if err := deribitClient.TestConnection(probeCtx); err != nil {
		logger.Warn("Exchange connectivity probe failed", zap.Error(err))
	}
	cancelProbe()

	// Initialize services
	priceService := service.NewPriceService(priceRepo, logger)
	fetchService := service.NewFetchService(deribitClient, priceRepo, logger)

	// Initialize handlers
	priceHandler := handler.NewPriceHandler(priceService, logger)

	// Start the fetch scheduler
	if cfg.Scheduler.Enabled {
		runner := scheduler.NewRunner(
			scheduler.Config{
				Interval:    cfg.Scheduler.Interval,
				RetryBase:   cfg.Scheduler.RetryBase,
				MaxAttempts: cfg.Scheduler.MaxAttempts,
			},
			func(ctx context.Context) error {
				_, err := fetchService.Execute(ctx, nil)
				return err
			},
			logger,
		)
		if err := runner.Start(); err != nil {
			logger.Fatal("Failed to start scheduler", zap.Error(err))
		}
		defer runner.Stop()
	}

	// Set up HTTP server with Gin
	router := setupRouter(priceHandler, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

func createLogger(level string) (*zap.Logger, error) {
	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Create logger config
	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

func connectToDB(dbConfig config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.DBName,
		dbConfig.SSLMode,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(dbConfig.MaxOpenConns)
	db.SetMaxIdleConns(dbConfig.MaxIdleConns)
	db.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	return db, nil
}

func setupRouter(priceHandler *handler.PriceHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Use middlewares
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		prices := v1.Group("/prices")
		{
			prices.GET("", priceHandler.GetAllPrices)
			prices.GET("/last", priceHandler.GetLastPrice)
			prices.GET("/by-date", priceHandler.GetPricesByDate)
			prices.GET("/supported-tickers", priceHandler.GetSupportedTickers)
		}
	}
	return router
}
