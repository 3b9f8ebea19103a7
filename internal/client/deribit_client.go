package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/yourorg/crypto-price-service/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DeribitAPIBaseURL = "https://www.deribit.com/api/v2"

	defaultTimeout     = 10 * time.Second
	defaultConcurrency = 4
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=client_test -destination=mock_http_client_test.go -source=deribit_client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// indexNameMapping maps our tickers to Deribit index names. Deribit happens
// to use the same naming scheme, but the mapping stays explicit so that a
// ticker without an exchange-side index is rejected before any network call.
var indexNameMapping = map[string]string{
	model.TickerBTCUSD: "btc_usd",
	model.TickerETHUSD: "eth_usd",
}

// DeribitClient fetches index prices from the Deribit public API.
type DeribitClient struct {
	baseURL    string
	httpClient HTTPClient
	logger     *zap.Logger
}

// DeribitClientOption is a configuration option for the Deribit client.
type DeribitClientOption func(*DeribitClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) DeribitClientOption {
	return func(c *DeribitClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) DeribitClientOption {
	return func(c *DeribitClient) {
		c.httpClient = httpClient
	}
}

// NewDeribitClient creates a new Deribit API client.
func NewDeribitClient(logger *zap.Logger, options ...DeribitClientOption) *DeribitClient {
	c := &DeribitClient{
		baseURL: DeribitAPIBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// indexPriceResponse is the JSON envelope of public/get_index_price.
type indexPriceResponse struct {
	Result struct {
		IndexPrice             *float64 `json:"index_price"`
		EstimatedDeliveryPrice *float64 `json:"estimated_delivery_price"`
	} `json:"result"`
}

type serverTimeResponse struct {
	Result *int64 `json:"result"`
}

// GetIndexPrice fetches the current index price for a single ticker. The
// observation timestamp is taken at receipt time rather than from the
// exchange: freshness is measured from ingestion.
func (c *DeribitClient) GetIndexPrice(ctx context.Context, ticker string) (model.Price, error) {
	indexName, ok := indexNameMapping[ticker]
	if !ok {
		return model.Price{}, fmt.Errorf("%w: %q, supported tickers: %v",
			model.ErrUnsupportedTicker, ticker, model.SupportedTickers())
	}

	params := url.Values{}
	params.Add("index_name", indexName)
	reqURL := fmt.Sprintf("%s/public/get_index_price?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Price{}, fmt.Errorf("%w: failed to create request: %v", model.ErrProviderUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch index price from Deribit",
			zap.Error(err),
			zap.String("ticker", ticker))
		return model.Price{}, fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("Deribit API error response",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(bodyBytes)))
		return model.Price{}, fmt.Errorf("%w: status code %d", model.ErrProviderUnavailable, resp.StatusCode)
	}

	var body indexPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("Failed to decode Deribit index price", zap.Error(err))
		return model.Price{}, fmt.Errorf("%w: failed to decode response: %v", model.ErrProviderUnavailable, err)
	}

	priceValue := body.Result.IndexPrice
	if priceValue == nil {
		// Some indexes only report an estimated delivery price.
		priceValue = body.Result.EstimatedDeliveryPrice
	}
	if priceValue == nil {
		return model.Price{}, fmt.Errorf("%w: no price field in response for %s", model.ErrProviderUnavailable, ticker)
	}
	if *priceValue <= 0 {
		return model.Price{}, fmt.Errorf("%w: zero or negative price %v for %s",
			model.ErrInvalidPrice, *priceValue, ticker)
	}

	timestamp := time.Now().Unix()

	return model.NewPrice(ticker, *priceValue, timestamp)
}

// GetIndexPrices fetches each ticker independently, fanning out at most
// defaultConcurrency requests at a time. Partial success is the normal
// outcome: the first map contains only tickers that were fetched, the second
// the per-ticker failures. A missing ticker means "temporarily unavailable
// this cycle", never "zero price".
func (c *DeribitClient) GetIndexPrices(ctx context.Context, tickers []string) (map[string]model.Price, map[string]error) {
	prices := make(map[string]model.Price, len(tickers))
	failures := make(map[string]error)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for _, ticker := range tickers {
		ticker := ticker
		g.Go(func() error {
			price, err := c.GetIndexPrice(ctx, ticker)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Error("Failed to fetch price",
					zap.Error(err),
					zap.String("ticker", ticker))
				failures[ticker] = err
				return nil
			}
			c.logger.Info("Fetched index price",
				zap.String("ticker", ticker),
				zap.Float64("price", price.Price))
			prices[ticker] = price
			return nil
		})
	}

	// Per-ticker errors are collected, never returned through the group.
	_ = g.Wait()

	return prices, failures
}

// TestConnection probes the exchange with public/get_time.
func (c *DeribitClient) TestConnection(ctx context.Context) error {
	reqURL := fmt.Sprintf("%s/public/get_time", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", model.ErrProviderUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status code %d", model.ErrProviderUnavailable, resp.StatusCode)
	}

	var body serverTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", model.ErrProviderUnavailable, err)
	}
	if body.Result == nil {
		return fmt.Errorf("%w: unexpected get_time response", model.ErrProviderUnavailable)
	}
	return nil
}
