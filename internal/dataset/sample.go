package dataset

import "github.com/cexcal-dev/cexcal/internal/model"

// Sample returns the starter dataset written by "cexcal init".
func Sample() []model.Listing {
	return []model.Listing{
		{Date: "2025-11-03", Exchange: "Binance", Type: model.TypeSpot, Token: "SENT", TokenDisplay: "SENT (Sentient)", Time: "08:00 UTC", Pairs: "SENT/USDT"},
		{Date: "2025-11-03", Exchange: "Bybit", Type: model.TypePerp, Token: "SENT", Time: "10:00 UTC"},
		{Date: "2025-11-07", Exchange: "OKX", Type: model.TypePreMarket, Token: "RLS", TokenDisplay: "Rayls (RLS)", Notes: "OKX will list RLS pre-market perpetual futures."},
		{Date: "2025-11-12", Exchange: "Coinbase", Type: model.TypeSpot, Token: "MET", Pairs: "MET/USD"},
		{Date: "2025-11-12", Exchange: "Binance", Type: model.TypePerp, Token: "MET", Time: "12:30 UTC", Pairs: "MET/USDT"},
		{Date: "2025-11-14", Exchange: "Binance", Type: model.TypeAlpha, Token: "BOB"},
		{Date: "2025-11-20", Exchange: "Upbit", Type: model.TypeSpot, Token: "ZKC", Pairs: "ZKC/KRW"},
		{Date: "2025-11-20", Exchange: "Hyperliquid", Type: model.TypePerp, Token: "ZKC"},
		{Date: "2025-12-01", Exchange: "Gate.io", Type: model.TypeSpot, Token: "MMT", Pairs: "MMT/USDT"},
		{Date: "2025-12-02", Exchange: "Bitget", Type: model.TypePerp, Token: "MMT"},
	}
}
