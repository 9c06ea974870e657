package ticker_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/pkg/pricefmt"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	sinkmocks "github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation/mocks"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/dailyref"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/ticker"
	tickermocks "github.com/NastyaGoryachaya/btc-ticker-service/internal/service/ticker/mocks"
	"github.com/golang/mock/gomock"
)

var now = time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)

type fixture struct {
	ctrl     *gomock.Controller
	resolver *tickermocks.MockPriceResolver
	ref      *tickermocks.MockReferenceProvider
	sink     *sinkmocks.MockSink
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return fixture{
		ctrl:     ctrl,
		resolver: tickermocks.NewMockPriceResolver(ctrl),
		ref:      tickermocks.NewMockReferenceProvider(ctrl),
		sink:     sinkmocks.NewMockSink(ctrl),
	}
}

func (f fixture) service(mode string) *ticker.Service {
	return ticker.NewServiceWithClock(f.resolver, f.ref, f.sink, mode, dailyref.FixedClock(now), slog.Default())
}

// daily_open: 350000 против 340000 — "+2.94% ▲"
func TestRunCycle_DailyOpen_Up(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().
		Resolve(gomock.Any(), domain.KindCurrentOnly).
		Return(domain.Quote{CurrentPrice: 350000, Source: domain.SourceBinance}, nil).
		Times(1)
	f.ref.EXPECT().Reference(gomock.Any()).Return(340000.0, domain.SourceCache, true).Times(1)

	var shown presentation.Payload
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, p presentation.Payload) { shown = p }).
		Times(1)
	f.sink.EXPECT().ShowError(gomock.Any(), gomock.Any()).Times(0)

	svc := f.service(config.ReferenceDailyOpen)
	p, err := svc.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.VariationPct == nil || pricefmt.FormatVariation(*p.VariationPct) != "+2.94% ▲" {
		t.Fatalf("unexpected variation: %+v", p.VariationPct)
	}
	if p.Source != domain.SourceBinance || p.ReferenceSource != domain.SourceCache {
		t.Fatalf("unexpected sources: %s / %s", p.Source, p.ReferenceSource)
	}
	if !p.At.Equal(now) || shown.CurrentPrice != 350000 {
		t.Fatalf("sink got %+v", shown)
	}

	last, ok := svc.Last()
	if !ok || last.CurrentPrice != 350000 {
		t.Fatalf("last result not stored: %+v", last)
	}
}

// daily_open: 340000 против 350000 — "-2.86% ▼"
func TestRunCycle_DailyOpen_Down(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentOnly).
		Return(domain.Quote{CurrentPrice: 340000, Source: domain.SourceBybit}, nil)
	f.ref.EXPECT().Reference(gomock.Any()).Return(350000.0, domain.SourceBinance, true)
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any())

	p, err := f.service(config.ReferenceDailyOpen).RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pricefmt.FormatVariation(*p.VariationPct); got != "-2.86% ▼" {
		t.Fatalf("unexpected variation: %s", got)
	}
}

// Нет опорной цены — успех без изменения
func TestRunCycle_DailyOpen_NoReference(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentOnly).
		Return(domain.Quote{CurrentPrice: 350000, Source: domain.SourceBinance}, nil)
	f.ref.EXPECT().Reference(gomock.Any()).Return(0.0, domain.SourceNone, false)
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any())

	p, err := f.service(config.ReferenceDailyOpen).RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ReferencePrice != nil || p.VariationPct != nil {
		t.Fatalf("reference must be absent: %+v", p)
	}
}

// Отказ всех источников — sink получает ошибку, а не успех
func TestRunCycle_CurrentFails(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentOnly).
		Return(domain.Quote{}, derrors.ErrAllSourcesExhausted)
	f.ref.EXPECT().Reference(gomock.Any()).Return(340000.0, domain.SourceCache, true).AnyTimes()
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any()).Times(0)
	f.sink.EXPECT().ShowError(gomock.Any(), gomock.Any()).Times(1)

	svc := f.service(config.ReferenceDailyOpen)
	_, err := svc.RunCycle(context.Background())
	if !errors.Is(err, derrors.ErrAllSourcesExhausted) {
		t.Fatalf("expected ErrAllSourcesExhausted, got %v", err)
	}
	if _, ok := svc.Last(); ok {
		t.Fatalf("failed cycle must not be stored")
	}
}

// ticker_24h: процент источника передаётся как есть
func TestRunCycle_Ticker24h_SourceVariation(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentAndReference).
		Return(domain.Quote{
			CurrentPrice: 350000,
			OpenPrice:    domain.Float(340100),
			VariationPct: domain.Float(2.52),
			Source:       domain.SourceBybit,
		}, nil).Times(1)
	f.ref.EXPECT().Reference(gomock.Any()).Times(0)
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any())

	p, err := f.service(config.ReferenceTicker24h).RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *p.VariationPct != 2.52 || *p.ReferencePrice != 340100 || p.ReferenceSource != domain.SourceBybit {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

// ticker_24h: источник без open — опорная цена из кэша, изменение считается
func TestRunCycle_Ticker24h_FallbackToCache(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentAndReference).
		Return(domain.Quote{CurrentPrice: 350000, Source: domain.SourceCoinGecko}, nil)
	f.ref.EXPECT().Reference(gomock.Any()).Return(340000.0, domain.SourceCache, true).Times(1)
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any())

	p, err := f.service(config.ReferenceTicker24h).RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(*p.VariationPct-2.941176470588235) > 1e-9 || p.ReferenceSource != domain.SourceCache {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

// rolling_24h: историческая цена ровно сутки назад
func TestRunCycle_Rolling24h(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentOnly).
		Return(domain.Quote{CurrentPrice: 340000, Source: domain.SourceBinance}, nil)
	f.resolver.EXPECT().ResolveHistorical(gomock.Any(), now.Add(-24*time.Hour)).
		Return(domain.Quote{CurrentPrice: 350000, Source: domain.SourceCoinGecko}, nil).
		Times(1)
	f.ref.EXPECT().Reference(gomock.Any()).Times(0)
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any())

	p, err := f.service(config.ReferenceRolling24h).RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pricefmt.FormatVariation(*p.VariationPct); got != "-2.86% ▼" {
		t.Fatalf("unexpected variation: %s", got)
	}
	if p.ReferenceSource != domain.SourceCoinGecko {
		t.Fatalf("unexpected reference source: %s", p.ReferenceSource)
	}
}

func TestRunCycle_Rolling24h_HistoryFails(t *testing.T) {
	t.Parallel()
	f := setup(t)
	defer f.ctrl.Finish()

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.KindCurrentOnly).
		Return(domain.Quote{CurrentPrice: 340000, Source: domain.SourceBinance}, nil)
	f.resolver.EXPECT().ResolveHistorical(gomock.Any(), gomock.Any()).
		Return(domain.Quote{}, derrors.ErrAllSourcesExhausted)
	f.sink.EXPECT().ShowSuccess(gomock.Any(), gomock.Any())

	p, err := f.service(config.ReferenceRolling24h).RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.VariationPct != nil {
		t.Fatalf("variation must be absent: %+v", p)
	}
}
