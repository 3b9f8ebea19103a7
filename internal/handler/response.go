package handler

import (
	"time"

	"github.com/yourorg/crypto-price-service/internal/model"
)

// PriceResponse is the caller-facing shape of one price row.
type PriceResponse struct {
	ID        int64   `json:"id"`
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
	Datetime  string  `json:"datetime"`
}

// PriceListResponse wraps a list of prices for one ticker.
type PriceListResponse struct {
	Ticker string          `json:"ticker"`
	Prices []PriceResponse `json:"prices"`
	Count  int             `json:"count"`
}

func toPriceResponse(p model.Price) PriceResponse {
	return PriceResponse{
		ID:        p.ID,
		Ticker:    p.Ticker,
		Price:     p.Price,
		Timestamp: p.Timestamp,
		Datetime:  p.Time().UTC().Format(time.RFC3339),
	}
}

func toPriceListResponse(ticker string, prices []model.Price) PriceListResponse {
	out := make([]PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, toPriceResponse(p))
	}
	return PriceListResponse{
		Ticker: ticker,
		Prices: out,
		Count:  len(out),
	}
}
