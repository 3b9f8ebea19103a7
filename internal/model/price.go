package model

import (
	"fmt"
	"time"
)

// Price represents one observed index price for a ticker at one instant.
// ID is zero until the record has been persisted.
type Price struct {
	ID        int64   `json:"id" db:"id"`
	Ticker    string  `json:"ticker" db:"ticker"`
	Price     float64 `json:"price" db:"price"`
	Timestamp int64   `json:"timestamp" db:"timestamp"`
}

// NewPrice creates a validated Price without an ID. Validation is fail-fast:
// an invalid ticker, non-positive price or non-positive timestamp is rejected
// here, never deferred to persistence.
func NewPrice(ticker string, price float64, timestamp int64) (Price, error) {
	if ticker == "" {
		return Price{}, fmt.Errorf("%w: ticker cannot be empty", ErrInvalidPrice)
	}
	if !IsSupportedTicker(ticker) {
		return Price{}, fmt.Errorf("%w: unsupported ticker %q", ErrInvalidPrice, ticker)
	}
	if price <= 0 {
		return Price{}, fmt.Errorf("%w: price must be positive, got %v", ErrInvalidPrice, price)
	}
	if timestamp <= 0 {
		return Price{}, fmt.Errorf("%w: timestamp must be positive, got %d", ErrInvalidPrice, timestamp)
	}

	return Price{
		Ticker:    ticker,
		Price:     price,
		Timestamp: timestamp,
	}, nil
}

// Time returns the observation instant as a time.Time.
func (p Price) Time() time.Time {
	return time.Unix(p.Timestamp, 0)
}

// IsRecent reports whether the price was observed within the given window.
func (p Price) IsRecent(window time.Duration) bool {
	return time.Since(p.Time()) <= window
}
