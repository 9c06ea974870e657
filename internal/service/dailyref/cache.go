package dailyref

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
	"golang.org/x/sync/singleflight"
)

// Кэш дневной опорной цены: одна запись, ключ — день UTC.
// Предполагается один писатель; при гонке побеждает последняя запись.

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// fillTimeout — предел общего запроса цены открытия и записи в хранилище
const fillTimeout = 30 * time.Second

// Ключи записи в хранилище
const (
	KeyDailyOpenPrice = "dailyOpenPrice"
	KeyPriceDate      = "priceDate"
)

// Store — долговременное key-value хранилище.
// Отсутствующие ключи просто не попадают в результат Get
type Store interface {
	Get(ctx context.Context, keys []string) (map[string]string, error)
	Set(ctx context.Context, record map[string]string) error
}

// OpenFetcher — получение цены открытия текущих суток (резолвер)
type OpenFetcher interface {
	ResolveDailyOpen(ctx context.Context) (float64, domain.Source, error)
}

type Cache struct {
	store   Store
	fetcher OpenFetcher
	clock   Clock
	logger  *slog.Logger
	group   singleflight.Group
}

func NewCache(store Store, fetcher OpenFetcher, logger *slog.Logger) *Cache {
	return NewCacheWithClock(store, fetcher, NewRealClock(), logger)
}

// NewCacheWithClock — конструктор для тестов с фиксированными часами
func NewCacheWithClock(store Store, fetcher OpenFetcher, clk Clock, logger *slog.Logger) *Cache {
	return &Cache{
		store:   store,
		fetcher: fetcher,
		clock:   clk,
		logger:  logger,
	}
}

type fetched struct {
	price  float64
	source domain.Source
}

// GetReferencePrice — опорная цена на сегодня (UTC); ok=false, если её нет нигде
func (c *Cache) GetReferencePrice(ctx context.Context) (float64, bool) {
	price, _, ok := c.Reference(ctx)
	return price, ok
}

// Reference — то же, плюс откуда взялась цена: SourceCache при попадании
func (c *Cache) Reference(ctx context.Context) (float64, domain.Source, bool) {
	todayKey := domain.DateKey(c.clock.Now())

	entry, err := c.read(ctx)
	switch {
	case err == nil && entry.DateKey == todayKey:
		c.logger.Debug("daily reference cache hit", "date_key", todayKey, "price", entry.ReferencePrice)
		return entry.ReferencePrice, domain.SourceCache, true
	case err == nil:
		c.logger.Debug("daily reference cache stale", "date_key", entry.DateKey, "today", todayKey)
	case errors.Is(err, ErrEntryMissing):
		c.logger.Debug("daily reference cache empty", "today", todayKey)
	case errors.Is(err, derrors.ErrCacheReadInvalid):
		c.logger.Warn("daily reference cache entry invalid, refetching", "err", err)
	default:
		c.logger.Warn("daily reference cache read failed, refetching", "err", err)
	}

	// параллельные промахи в рамках процесса сводим в один запрос
	// запрос общий для всех ждущих, поэтому отмена одного из них его не прерывает
	ch := c.group.DoChan(todayKey, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fillTimeout)
		defer cancel()
		return c.fill(fctx, todayKey)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		c.logger.Warn("daily reference wait cancelled", "date_key", todayKey, "err", ctx.Err())
		return 0, domain.SourceNone, false
	}
	if res.Err != nil {
		c.logger.Warn("daily reference unavailable", "date_key", todayKey, "err", res.Err)
		return 0, domain.SourceNone, false
	}
	f := res.Val.(fetched)
	return f.price, f.source, true
}

// Warm — принудительно заполнить кэш на сегодня, если его ещё нет
func (c *Cache) Warm(ctx context.Context) error {
	if _, _, ok := c.Reference(ctx); !ok {
		return fmt.Errorf("warm daily reference: %w", derrors.ErrAllSourcesExhausted)
	}
	return nil
}

// Entry — текущее содержимое кэша без похода к источникам
func (c *Cache) Entry(ctx context.Context) (domain.DailyEntry, error) {
	return c.read(ctx)
}

// ErrEntryMissing — в хранилище ещё нет записи
var ErrEntryMissing = errors.New("daily reference entry missing")

func (c *Cache) read(ctx context.Context) (domain.DailyEntry, error) {
	rec, err := c.store.Get(ctx, []string{KeyDailyOpenPrice, KeyPriceDate})
	if err != nil {
		return domain.DailyEntry{}, fmt.Errorf("store get: %w", err)
	}
	rawPrice, okPrice := rec[KeyDailyOpenPrice]
	rawDate, okDate := rec[KeyPriceDate]
	if !okPrice && !okDate {
		return domain.DailyEntry{}, ErrEntryMissing
	}
	if !okPrice || !okDate {
		return domain.DailyEntry{}, fmt.Errorf("%w: partial entry", derrors.ErrCacheReadInvalid)
	}

	rawDate = strings.TrimSpace(rawDate)
	if _, err := domain.ParseDateKey(rawDate); err != nil {
		return domain.DailyEntry{}, fmt.Errorf("%w: date %q", derrors.ErrCacheReadInvalid, rawDate)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(rawPrice), 64)
	if err != nil || !domain.IsValidPrice(price) {
		return domain.DailyEntry{}, fmt.Errorf("%w: price %q", derrors.ErrCacheReadInvalid, rawPrice)
	}
	return domain.DailyEntry{ReferencePrice: price, DateKey: rawDate}, nil
}

// fill — промах: берём цену у источников и сохраняем до возврата
func (c *Cache) fill(ctx context.Context, todayKey string) (fetched, error) {
	price, src, err := c.fetcher.ResolveDailyOpen(ctx)
	if err != nil {
		return fetched{}, err
	}
	if !domain.IsValidPrice(price) {
		return fetched{}, fmt.Errorf("%w: daily open %v", derrors.ErrSourceSchemaInvalid, price)
	}

	rec := map[string]string{
		KeyDailyOpenPrice: strconv.FormatFloat(price, 'f', -1, 64),
		KeyPriceDate:      todayKey,
	}
	if err := c.store.Set(ctx, rec); err != nil {
		// значение валидно, просто в следующий раз придётся запросить ещё раз
		c.logger.Warn("daily reference cache write failed", "date_key", todayKey, "err", err)
	} else {
		c.logger.Info("daily reference cached", "date_key", todayKey, "price", price, "source", src)
	}
	return fetched{price: price, source: src}, nil
}
