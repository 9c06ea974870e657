package api_client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestBinance_FetchQuote_CurrentOnly(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "/api/v3/ticker/price", http.StatusOK, `{"symbol":"BTCBRL","price":"350123.00000000"}`)
	b := NewBinance(sourceConfig(srv.URL), "btcbrl")

	q, err := b.FetchQuote(context.Background(), domain.KindCurrentOnly)
	require.NoError(t, err)
	require.Equal(t, 350123.0, q.CurrentPrice)
	require.Equal(t, domain.SourceBinance, q.Source)
	require.Nil(t, q.OpenPrice)
	require.Nil(t, q.VariationPct)
	require.False(t, q.FetchedAt.IsZero())
}

func TestBinance_FetchQuote_WithReference(t *testing.T) {
	t.Parallel()

	body := `{"symbol":"BTCBRL","lastPrice":"350000.00","openPrice":"340000.00","priceChangePercent":"2.941"}`
	srv := newTestServer(t, "/api/v3/ticker/24hr", http.StatusOK, body)
	b := NewBinance(sourceConfig(srv.URL), "BTCBRL")

	q, err := b.FetchQuote(context.Background(), domain.KindCurrentAndReference)
	require.NoError(t, err)
	require.Equal(t, 350000.0, q.CurrentPrice)
	require.NotNil(t, q.OpenPrice)
	require.Equal(t, 340000.0, *q.OpenPrice)
	// процент Binance уже в процентах и передаётся как есть
	require.Equal(t, 2.941, *q.VariationPct)
}

func TestBinance_FetchDailyOpen(t *testing.T) {
	t.Parallel()

	body := `[[1735776000000,"340000.00","351000.00","338000.00","350000.00","12.5",1735862399999,"4300000.0",1200,"6.1","2100000.0","0"]]`
	srv := newTestServer(t, "/api/v3/klines", http.StatusOK, body)
	b := NewBinance(sourceConfig(srv.URL), "BTCBRL")

	open, err := b.FetchDailyOpen(context.Background())
	require.NoError(t, err)
	require.Equal(t, 340000.0, open)
}

func TestNormalizeBinancePrice_Invalid(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, price := range []string{"", "n/a", "0"} {
		_, err := normalizeBinancePrice(binanceTickerPrice{Price: price}, now)
		require.ErrorIs(t, err, derrors.ErrSourceSchemaInvalid)
	}
}

func TestNormalizeBinance24h_ComputesVariationWithoutPercent(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	q, err := normalizeBinance24h(binanceTicker24h{LastPrice: "340000", OpenPrice: "350000"}, now)
	require.NoError(t, err)
	require.InDelta(t, -2.857142857, *q.VariationPct, 1e-6)
}

func TestNormalizeBinance24h_ZeroOpenIsSchemaFailure(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	_, err := normalizeBinance24h(binanceTicker24h{LastPrice: "340000", OpenPrice: "0.00", PriceChangePercent: "0"}, now)
	require.ErrorIs(t, err, derrors.ErrSourceSchemaInvalid)
}

func TestNormalizeBinanceKlineOpen_Invalid(t *testing.T) {
	t.Parallel()

	_, err := normalizeBinanceKlineOpen(nil)
	require.ErrorIs(t, err, derrors.ErrSourceSchemaInvalid)

	rows := [][]json.RawMessage{{json.RawMessage(`1735776000000`), json.RawMessage(`340000`)}}
	_, err = normalizeBinanceKlineOpen(rows)
	require.ErrorIs(t, err, derrors.ErrSourceSchemaInvalid)
}

func TestNormalizeBinance24h_NonFinitePercentIsSchemaFailure(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, pct := range []string{"NaN", "Inf", "-Infinity"} {
		_, err := normalizeBinance24h(binanceTicker24h{LastPrice: "350000", OpenPrice: "340000", PriceChangePercent: pct}, now)
		require.ErrorIsf(t, err, derrors.ErrSourceSchemaInvalid, "pct=%s", pct)
	}
}
