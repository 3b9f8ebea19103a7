package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yourorg/crypto-price-service/internal/model"

	"go.uber.org/zap"
)

// PriceService handles the read side: validated queries against the store.
type PriceService struct {
	store  PriceStore
	logger *zap.Logger
}

// NewPriceService creates a new price query service
func NewPriceService(store PriceStore, logger *zap.Logger) *PriceService {
	return &PriceService{
		store:  store,
		logger: logger,
	}
}

// GetAllPrices retrieves all stored prices for a ticker, most recent first.
func (s *PriceService) GetAllPrices(ctx context.Context, ticker string) ([]model.Price, error) {
	if err := validateTicker(ticker); err != nil {
		return nil, err
	}

	return s.store.GetAll(ctx, ticker)
}

// GetLastPrice retrieves the most recent price for a ticker. No data yet is
// a nil price with a nil error, not a failure.
func (s *PriceService) GetLastPrice(ctx context.Context, ticker string) (*model.Price, error) {
	if err := validateTicker(ticker); err != nil {
		return nil, err
	}

	return s.store.GetLast(ctx, ticker)
}

// GetPricesByDateRange retrieves prices within [start, end], both inclusive.
func (s *PriceService) GetPricesByDateRange(ctx context.Context, ticker string, start, end time.Time) ([]model.Price, error) {
	if err := validateTicker(ticker); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start_date cannot be after end_date", model.ErrInvalidRange)
	}

	return s.store.GetByDateRange(ctx, ticker, start, end)
}

// SupportedTickers returns the supported ticker list. Static, no store access.
func (s *PriceService) SupportedTickers() []string {
	return model.SupportedTickers()
}

func validateTicker(ticker string) error {
	if !model.IsSupportedTicker(ticker) {
		return fmt.Errorf("%w: %q, supported tickers: %v",
			model.ErrInvalidTicker, ticker, model.SupportedTickers())
	}
	return nil
}
