package model

import "strings"

// Supported currency pair tickers. The set is closed: adding a pair is a code
// change, not data. Declaration order is the canonical listing order.
const (
	TickerBTCUSD = "btc_usd"
	TickerETHUSD = "eth_usd"
)

var supportedTickers = []string{
	TickerBTCUSD,
	TickerETHUSD,
}

// SupportedTickers returns all supported tickers in declaration order.
func SupportedTickers() []string {
	out := make([]string, len(supportedTickers))
	copy(out, supportedTickers)
	return out
}

// IsSupportedTicker reports whether the ticker is in the supported set.
func IsSupportedTicker(ticker string) bool {
	for _, t := range supportedTickers {
		if t == ticker {
			return true
		}
	}
	return false
}

// BaseCurrency returns the base currency code of a pair, e.g. "btc_usd" -> "BTC".
func BaseCurrency(ticker string) string {
	base, _, _ := strings.Cut(ticker, "_")
	return strings.ToUpper(base)
}
