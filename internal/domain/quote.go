package domain

import "time"

// Source — идентификатор внешнего источника котировок
type Source string

const (
	SourceBinance   Source = "binance"
	SourceBybit     Source = "bybit"
	SourceCoinGecko Source = "coingecko"
	SourceCache     Source = "cache"
	SourceNone      Source = ""
)

// RequestKind — что именно нужно получить от резолвера
type RequestKind int

const (
	KindCurrentOnly RequestKind = iota
	KindCurrentAndReference
)

func (k RequestKind) String() string {
	switch k {
	case KindCurrentOnly:
		return "current"
	case KindCurrentAndReference:
		return "current+reference"
	default:
		return "unknown"
	}
}

// Quote — нормализованная котировка одного источника.
// OpenPrice и VariationPct равны nil, если источник их не отдал.
type Quote struct {
	CurrentPrice float64   `json:"current_price"`
	OpenPrice    *float64  `json:"open_price,omitempty"`
	VariationPct *float64  `json:"variation_pct,omitempty"`
	Source       Source    `json:"source"`
	FetchedAt    time.Time `json:"fetched_at"` // UTC
}

// HasReference — есть ли в котировке опорная цена или готовое изменение
func (q Quote) HasReference() bool {
	return q.OpenPrice != nil || q.VariationPct != nil
}

// DailyEntry — единственная запись кэша дневной опорной цены
type DailyEntry struct {
	ReferencePrice float64
	DateKey        string // YYYY-MM-DD, UTC дня получения цены
}

// Float — указатель на копию значения, для необязательных полей
func Float(v float64) *float64 {
	return &v
}
