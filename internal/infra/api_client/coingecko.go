package api_client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

// CoinGecko — агрегатор, последний в цепочке; единственный с историей
type CoinGecko struct {
	client
	coinID   string
	currency string
}

type coingeckoMarketData struct {
	MarketData *struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

// CoinGeckoHistoryLayout — формат даты в /coins/{id}/history
const CoinGeckoHistoryLayout = "02-01-2006"

func NewCoinGecko(cfg config.SourceConfig, coinID, currency string) *CoinGecko {
	return &CoinGecko{
		client:   newClient(cfg),
		coinID:   strings.ToLower(coinID),
		currency: strings.ToLower(currency),
	}
}

func (c *CoinGecko) Name() domain.Source { return domain.SourceCoinGecko }

func (c *CoinGecko) FetchQuote(ctx context.Context, kind domain.RequestKind) (domain.Quote, error) {
	q := url.Values{
		"ids":           {c.coinID},
		"vs_currencies": {c.currency},
	}
	if kind == domain.KindCurrentAndReference {
		q.Set("include_24hr_change", "true")
	}
	var resp map[string]map[string]*float64
	if err := c.getJSON(ctx, "/simple/price", q, &resp); err != nil {
		return domain.Quote{}, err
	}
	return normalizeCoinGeckoSimple(resp, c.coinID, c.currency, kind, c.now())
}

// FetchHistorical — снимок CoinGecko на 00:00 UTC указанного дня
func (c *CoinGecko) FetchHistorical(ctx context.Context, date time.Time) (domain.Quote, error) {
	q := url.Values{
		"date":         {date.UTC().Format(CoinGeckoHistoryLayout)},
		"localization": {"false"},
	}
	var resp coingeckoMarketData
	if err := c.getJSON(ctx, "/coins/"+url.PathEscape(c.coinID)+"/history", q, &resp); err != nil {
		return domain.Quote{}, err
	}
	price, err := normalizeCoinGeckoHistory(resp, c.currency)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{CurrentPrice: price, Source: domain.SourceCoinGecko, FetchedAt: c.now()}, nil
}

// FetchDailyOpen — исторический снимок сегодняшнего дня UTC
func (c *CoinGecko) FetchDailyOpen(ctx context.Context) (float64, error) {
	q, err := c.FetchHistorical(ctx, c.now())
	if err != nil {
		return 0, err
	}
	return q.CurrentPrice, nil
}

func normalizeCoinGeckoSimple(resp map[string]map[string]*float64, coinID, currency string, kind domain.RequestKind, now time.Time) (domain.Quote, error) {
	prices, ok := resp[coinID]
	if !ok {
		return domain.Quote{}, fmt.Errorf("%w: %s is missing", derrors.ErrSourceSchemaInvalid, coinID)
	}
	raw := prices[currency]
	if raw == nil {
		return domain.Quote{}, fmt.Errorf("%w: %s.%s is missing", derrors.ErrSourceSchemaInvalid, coinID, currency)
	}
	price, err := checkPrice(currency, *raw)
	if err != nil {
		return domain.Quote{}, err
	}
	q := domain.Quote{CurrentPrice: price, Source: domain.SourceCoinGecko, FetchedAt: now}
	if kind == domain.KindCurrentOnly {
		return q, nil
	}

	// open CoinGecko не отдаёт, восстанавливаем из процента за 24ч
	change := prices[currency+"_24h_change"]
	if change == nil {
		return q, nil
	}
	base := 1 + *change/100
	if base <= 0 {
		return domain.Quote{}, fmt.Errorf("%w: 24h change %v out of range", derrors.ErrSourceSchemaInvalid, *change)
	}
	return withReference(q, price/base, change)
}

func normalizeCoinGeckoHistory(resp coingeckoMarketData, currency string) (float64, error) {
	if resp.MarketData == nil {
		return 0, fmt.Errorf("%w: market_data is missing", derrors.ErrSourceSchemaInvalid)
	}
	v, ok := resp.MarketData.CurrentPrice[currency]
	if !ok {
		return 0, fmt.Errorf("%w: market_data.current_price.%s is missing", derrors.ErrSourceSchemaInvalid, currency)
	}
	return checkPrice(currency, v)
}
