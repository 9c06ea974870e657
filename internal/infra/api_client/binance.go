package api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

// Binance — основной источник (публичный market data API)
type Binance struct {
	client
	symbol string
}

type binanceTickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

type binanceTicker24h struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	OpenPrice          string `json:"openPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
}

func NewBinance(cfg config.SourceConfig, symbol string) *Binance {
	return &Binance{
		client: newClient(cfg),
		symbol: strings.ToUpper(symbol),
	}
}

func (b *Binance) Name() domain.Source { return domain.SourceBinance }

func (b *Binance) FetchQuote(ctx context.Context, kind domain.RequestKind) (domain.Quote, error) {
	q := url.Values{"symbol": {b.symbol}}

	if kind == domain.KindCurrentAndReference {
		var resp binanceTicker24h
		if err := b.getJSON(ctx, "/api/v3/ticker/24hr", q, &resp); err != nil {
			return domain.Quote{}, err
		}
		return normalizeBinance24h(resp, b.now())
	}

	var resp binanceTickerPrice
	if err := b.getJSON(ctx, "/api/v3/ticker/price", q, &resp); err != nil {
		return domain.Quote{}, err
	}
	return normalizeBinancePrice(resp, b.now())
}

// FetchDailyOpen — open дневной свечи 1d, свеча открывается в 00:00 UTC
func (b *Binance) FetchDailyOpen(ctx context.Context) (float64, error) {
	q := url.Values{
		"symbol":   {b.symbol},
		"interval": {"1d"},
		"limit":    {"1"},
	}
	var rows [][]json.RawMessage
	if err := b.getJSON(ctx, "/api/v3/klines", q, &rows); err != nil {
		return 0, err
	}
	return normalizeBinanceKlineOpen(rows)
}

func normalizeBinancePrice(resp binanceTickerPrice, now time.Time) (domain.Quote, error) {
	price, err := parsePrice("price", resp.Price)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{CurrentPrice: price, Source: domain.SourceBinance, FetchedAt: now}, nil
}

func normalizeBinance24h(resp binanceTicker24h, now time.Time) (domain.Quote, error) {
	last, err := parsePrice("lastPrice", resp.LastPrice)
	if err != nil {
		return domain.Quote{}, err
	}
	open, err := parsePrice("openPrice", resp.OpenPrice)
	if err != nil {
		return domain.Quote{}, err
	}
	q := domain.Quote{CurrentPrice: last, Source: domain.SourceBinance, FetchedAt: now}

	// priceChangePercent уже в процентах
	var native *float64
	if resp.PriceChangePercent != "" {
		pct, err := parsePercent("priceChangePercent", resp.PriceChangePercent)
		if err != nil {
			return domain.Quote{}, err
		}
		native = &pct
	}
	return withReference(q, open, native)
}

// свеча: [openTime, "open", "high", "low", "close", ...]
func normalizeBinanceKlineOpen(rows [][]json.RawMessage) (float64, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return 0, fmt.Errorf("%w: empty kline", derrors.ErrSourceSchemaInvalid)
	}
	var raw string
	if err := json.Unmarshal(rows[0][1], &raw); err != nil {
		return 0, fmt.Errorf("%w: kline open is not a string", derrors.ErrSourceSchemaInvalid)
	}
	return parsePrice("kline open", raw)
}
