package service

import (
	"context"
	"time"

	"github.com/yourorg/crypto-price-service/internal/model"
)

// PriceStore is the persistence surface the services depend on.
// Implemented by repository.PriceRepository.
//
//go:generate mockgen -package=service_test -destination=mock_ports_test.go -source=ports.go PriceStore,MarketDataProvider
type PriceStore interface {
	Save(ctx context.Context, price model.Price) (model.Price, error)
	BatchSave(ctx context.Context, prices []model.Price) ([]model.Price, error)
	GetAll(ctx context.Context, ticker string) ([]model.Price, error)
	GetLast(ctx context.Context, ticker string) (*model.Price, error)
	GetByDateRange(ctx context.Context, ticker string, start, end time.Time) ([]model.Price, error)
}

// MarketDataProvider fetches current index prices from the external
// exchange. Implemented by client.DeribitClient.
type MarketDataProvider interface {
	GetIndexPrice(ctx context.Context, ticker string) (model.Price, error)
	GetIndexPrices(ctx context.Context, tickers []string) (map[string]model.Price, map[string]error)
}
