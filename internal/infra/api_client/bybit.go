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

// Bybit — резервный источник, v5 market API, спот
type Bybit struct {
	client
	symbol string
}

type bybitEnvelope[T any] struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		Category string `json:"category"`
		List     []T    `json:"list"`
	} `json:"result"`
}

type bybitTicker struct {
	Symbol       string `json:"symbol"`
	LastPrice    string `json:"lastPrice"`
	PrevPrice24h string `json:"prevPrice24h"`
	Price24hPcnt string `json:"price24hPcnt"` // доля, 0.0294 = 2.94%
}

func NewBybit(cfg config.SourceConfig, symbol string) *Bybit {
	return &Bybit{
		client: newClient(cfg),
		symbol: strings.ToUpper(symbol),
	}
}

func (b *Bybit) Name() domain.Source { return domain.SourceBybit }

func (b *Bybit) FetchQuote(ctx context.Context, kind domain.RequestKind) (domain.Quote, error) {
	q := url.Values{
		"category": {"spot"},
		"symbol":   {b.symbol},
	}
	var resp bybitEnvelope[bybitTicker]
	if err := b.getJSON(ctx, "/v5/market/tickers", q, &resp); err != nil {
		return domain.Quote{}, err
	}
	return normalizeBybitTicker(resp, kind, b.now())
}

// FetchDailyOpen — open дневной свечи D
func (b *Bybit) FetchDailyOpen(ctx context.Context) (float64, error) {
	q := url.Values{
		"category": {"spot"},
		"symbol":   {b.symbol},
		"interval": {"D"},
		"limit":    {"1"},
	}
	var resp bybitEnvelope[[]string]
	if err := b.getJSON(ctx, "/v5/market/kline", q, &resp); err != nil {
		return 0, err
	}
	if err := checkBybitRetCode(resp.RetCode, resp.RetMsg); err != nil {
		return 0, err
	}
	// свеча: [startTime, open, high, low, close, volume, turnover]
	if len(resp.Result.List) == 0 || len(resp.Result.List[0]) < 2 {
		return 0, fmt.Errorf("%w: empty kline", derrors.ErrSourceSchemaInvalid)
	}
	return parsePrice("kline open", resp.Result.List[0][1])
}

func checkBybitRetCode(code int, msg string) error {
	if code != 0 {
		return fmt.Errorf("%w: retCode %d: %s", derrors.ErrSourceSchemaInvalid, code, msg)
	}
	return nil
}

func normalizeBybitTicker(resp bybitEnvelope[bybitTicker], kind domain.RequestKind, now time.Time) (domain.Quote, error) {
	if err := checkBybitRetCode(resp.RetCode, resp.RetMsg); err != nil {
		return domain.Quote{}, err
	}
	if len(resp.Result.List) == 0 {
		return domain.Quote{}, fmt.Errorf("%w: empty ticker list", derrors.ErrSourceSchemaInvalid)
	}
	t := resp.Result.List[0]

	last, err := parsePrice("lastPrice", t.LastPrice)
	if err != nil {
		return domain.Quote{}, err
	}
	q := domain.Quote{CurrentPrice: last, Source: domain.SourceBybit, FetchedAt: now}
	if kind == domain.KindCurrentOnly {
		return q, nil
	}

	open, err := parsePrice("prevPrice24h", t.PrevPrice24h)
	if err != nil {
		return domain.Quote{}, err
	}
	var native *float64
	if t.Price24hPcnt != "" {
		ratio, err := parsePercent("price24hPcnt", t.Price24hPcnt)
		if err != nil {
			return domain.Quote{}, err
		}
		pct := ratio * 100
		native = &pct
	}
	return withReference(q, open, native)
}
