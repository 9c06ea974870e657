package api_client

import "github.com/NastyaGoryachaya/btc-ticker-service/internal/service/resolver"

// Возможности адаптеров, на которые рассчитывает резолвер
var (
	_ resolver.DailyOpenSource = (*Binance)(nil)
	_ resolver.DailyOpenSource = (*Bybit)(nil)
	_ resolver.DailyOpenSource = (*CoinGecko)(nil)
	_ resolver.HistorySource   = (*CoinGecko)(nil)
)
