package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCategory is the visual category of unmapped exchanges.
const DefaultCategory = "exchange-default"

// categories maps lowercased exchange names and aliases to visual categories.
var categories = map[string]string{
	"binance":     "exchange-binance",
	"币安":          "exchange-binance",
	"coinbase":    "exchange-coinbase",
	"bybit":       "exchange-bybit",
	"okx":         "exchange-okx",
	"okex":        "exchange-okx",
	"upbit":       "exchange-upbit",
	"bithumb":     "exchange-bithumb",
	"kraken":      "exchange-kraken",
	"huobi":       "exchange-huobi",
	"gate.io":     "exchange-gate",
	"gateio":      "exchange-gate",
	"gate":        "exchange-gate",
	"kucoin":      "exchange-kucoin",
	"mexc":        "exchange-mexc",
	"bitget":      "exchange-bitget",
	"bitmart":     "exchange-bitmart",
	"hyperliquid": "exchange-hyperliquid",
}

// Category returns the visual category for an exchange name.
func Category(exchange string) string {
	// Casers are stateful, so each call gets its own.
	if c, ok := categories[cases.Lower(language.Und).String(exchange)]; ok {
		return c
	}
	return DefaultCategory
}
