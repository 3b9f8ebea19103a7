package service

import (
	"context"

	"github.com/yourorg/crypto-price-service/internal/model"

	"go.uber.org/zap"
)

// FetchService orchestrates one ingestion cycle: provider fetch, then
// batch persistence of whatever subset succeeded.
type FetchService struct {
	provider MarketDataProvider
	store    PriceStore
	logger   *zap.Logger
}

// NewFetchService creates a new fetch pipeline service
func NewFetchService(provider MarketDataProvider, store PriceStore, logger *zap.Logger) *FetchService {
	return &FetchService{
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

// Execute runs one fetch cycle for the given tickers; nil means the full
// supported set. Tickers that fail to fetch are logged and skipped — an
// all-failed cycle returns an empty slice, which is a normal "nothing new"
// outcome, not an error. The pipeline never retries within a cycle; retry
// policy belongs to the scheduler wrapping it. Store failures propagate.
func (s *FetchService) Execute(ctx context.Context, tickers []string) ([]model.Price, error) {
	if tickers == nil {
		tickers = model.SupportedTickers()
	}

	fetched, failures := s.provider.GetIndexPrices(ctx, tickers)
	for ticker, err := range failures {
		s.logger.Warn("Ticker unavailable this cycle",
			zap.String("ticker", ticker),
			zap.Error(err))
	}

	if len(fetched) == 0 {
		s.logger.Warn("No prices fetched this cycle", zap.Strings("tickers", tickers))
		return []model.Price{}, nil
	}

	// Keep registry order, not map order, for deterministic persistence.
	prices := make([]model.Price, 0, len(fetched))
	for _, ticker := range tickers {
		if price, ok := fetched[ticker]; ok {
			prices = append(prices, price)
		}
	}

	saved, err := s.store.BatchSave(ctx, prices)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fetch cycle completed",
		zap.Int("fetched", len(saved)),
		zap.Int("failed", len(failures)))

	return saved, nil
}
