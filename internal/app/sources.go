package app

import (
	"fmt"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/consts"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/infra/api_client"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/resolver"
)

// buildSources — адаптеры в порядке resolver.order
func buildSources(cfg config.Config) ([]resolver.Source, error) {
	out := make([]resolver.Source, 0, len(cfg.Resolver.Order))
	for _, name := range cfg.Resolver.Order {
		sc, ok := cfg.Sources.Source(name)
		if !ok {
			return nil, fmt.Errorf("unknown source %q", name)
		}
		switch name {
		case consts.SourceBinance:
			out = append(out, api_client.NewBinance(sc, cfg.Pair.Symbol))
		case consts.SourceBybit:
			out = append(out, api_client.NewBybit(sc, cfg.Pair.Symbol))
		case consts.SourceCoinGecko:
			out = append(out, api_client.NewCoinGecko(sc, cfg.Pair.CoinID, cfg.Pair.Currency))
		}
	}
	return out, nil
}
