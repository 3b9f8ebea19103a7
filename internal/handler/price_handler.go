package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/yourorg/crypto-price-service/internal/model"
	"github.com/yourorg/crypto-price-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PriceHandler handles price HTTP requests
type PriceHandler struct {
	priceService *service.PriceService
	logger       *zap.Logger
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(priceService *service.PriceService, logger *zap.Logger) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
		logger:       logger,
	}
}

// GetAllPrices handles retrieving all prices for a ticker
// GET /api/v1/prices?ticker=btc_usd
func (h *PriceHandler) GetAllPrices(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker is required"})
		return
	}

	prices, err := h.priceService.GetAllPrices(c.Request.Context(), ticker)
	if err != nil {
		h.respondError(c, err, "Failed to get prices")
		return
	}

	if len(prices) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No prices found for ticker: " + ticker})
		return
	}

	c.JSON(http.StatusOK, toPriceListResponse(ticker, prices))
}

// GetLastPrice handles retrieving the most recent price for a ticker
// GET /api/v1/prices/last?ticker=btc_usd
func (h *PriceHandler) GetLastPrice(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker is required"})
		return
	}

	price, err := h.priceService.GetLastPrice(c.Request.Context(), ticker)
	if err != nil {
		h.respondError(c, err, "Failed to get last price")
		return
	}

	if price == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No prices found for ticker: " + ticker})
		return
	}

	c.JSON(http.StatusOK, toPriceResponse(*price))
}

// GetPricesByDate handles retrieving prices for a ticker within an inclusive
// date range
// GET /api/v1/prices/by-date?ticker=btc_usd&start_date=...&end_date=...
func (h *PriceHandler) GetPricesByDate(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker is required"})
		return
	}

	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}

	prices, err := h.priceService.GetPricesByDateRange(c.Request.Context(), ticker, start, end)
	if err != nil {
		h.respondError(c, err, "Failed to get prices by date range")
		return
	}

	if len(prices) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No prices found for ticker " + ticker + " in the requested range"})
		return
	}

	c.JSON(http.StatusOK, toPriceListResponse(ticker, prices))
}

// GetSupportedTickers handles retrieving the supported ticker list
// GET /api/v1/prices/supported-tickers
func (h *PriceHandler) GetSupportedTickers(c *gin.Context) {
	c.JSON(http.StatusOK, h.priceService.SupportedTickers())
}

// parseDateParam reads a required date query parameter, accepting RFC3339 or
// plain YYYY-MM-DD. On failure it writes the 400 response and returns ok=false.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return time.Time{}, false
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Try an alternate format
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD or RFC3339"})
			return time.Time{}, false
		}
	}
	return parsed, true
}

// respondError maps domain errors to status codes. Client-input errors are
// 400, everything else is an internal failure; empty results never reach
// this path.
func (h *PriceHandler) respondError(c *gin.Context, err error, msg string) {
	if errors.Is(err, model.ErrInvalidTicker) || errors.Is(err, model.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
