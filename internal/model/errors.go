package model

import "errors"

// Domain error kinds. Callers classify failures with errors.Is; the HTTP
// layer maps them to status codes and must never conflate a client-input
// error with an empty result or an internal failure.
var (
	// ErrUnsupportedTicker is returned by the market data provider when asked
	// for a ticker outside the supported set, before any network call.
	ErrUnsupportedTicker = errors.New("unsupported ticker")

	// ErrProviderUnavailable wraps transport-level failures against the
	// external exchange: timeouts, non-2xx responses, malformed bodies.
	ErrProviderUnavailable = errors.New("market data provider unavailable")

	// ErrInvalidPrice is returned when a fetched or constructed price fails
	// validation (non-positive price or timestamp, bad ticker).
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidTicker is a client-input error from the query service.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrInvalidRange is a client-input error for a date range with start > end.
	ErrInvalidRange = errors.New("invalid date range")
)
