// Command fetch runs a single fetch cycle against the configured exchange
// and database, then exits. Useful for backfilling a point-in-time sample or
// smoke-testing credentials without starting the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/yourorg/crypto-price-service/internal/client"
	"github.com/yourorg/crypto-price-service/internal/config"
	"github.com/yourorg/crypto-price-service/internal/repository"
	"github.com/yourorg/crypto-price-service/internal/service"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	tickersFlag := flag.String("tickers", "", "comma-separated tickers (default: all supported)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	priceRepo := repository.NewPriceRepository(db, logger)
	if err := priceRepo.InitSchema(context.Background()); err != nil {
		logger.Fatal("Failed to initialize database schema", zap.Error(err))
	}

	deribitClient := client.NewDeribitClient(logger,
		client.WithBaseURL(cfg.Deribit.URL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Deribit.Timeout}),
	)

	fetchService := service.NewFetchService(deribitClient, priceRepo, logger)

	var tickers []string
	if *tickersFlag != "" {
		tickers = strings.Split(*tickersFlag, ",")
	}

	saved, err := fetchService.Execute(context.Background(), tickers)
	if err != nil {
		logger.Fatal("Fetch cycle failed", zap.Error(err))
	}

	for _, p := range saved {
		fmt.Printf("%s\t%.2f\t%d\n", p.Ticker, p.Price, p.Timestamp)
	}
	logger.Info("Fetch cycle completed", zap.Int("saved", len(saved)))
}
