package consts

import "strings"

// Имена источников котировок, допустимые в resolver.order
const (
	SourceBinance   = "binance"
	SourceBybit     = "bybit"
	SourceCoinGecko = "coingecko"
)

var KnownSources = []string{SourceBinance, SourceBybit, SourceCoinGecko}

func IsKnownSource(name string) bool {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, k := range KnownSources {
		if s == k {
			return true
		}
	}
	return false
}
