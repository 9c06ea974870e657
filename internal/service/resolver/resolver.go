package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
)

// Выбор цены из упорядоченного списка источников: первый валидный ответ побеждает

//go:generate mockgen -source=resolver.go -destination=mocks/mock_sources.go -package=mocks

type Source interface {
	Name() domain.Source
	FetchQuote(ctx context.Context, kind domain.RequestKind) (domain.Quote, error)
}

// DailyOpenSource — источник с ценой открытия текущих суток UTC
type DailyOpenSource interface {
	Source
	FetchDailyOpen(ctx context.Context) (float64, error)
}

// HistorySource — источник с ценой на произвольную дату
type HistorySource interface {
	Source
	FetchHistorical(ctx context.Context, date time.Time) (domain.Quote, error)
}

type Resolver struct {
	sources []Source
	logger  *slog.Logger
}

// New — sources в порядке приоритета, первый — основной
func New(sources []Source, logger *slog.Logger) *Resolver {
	return &Resolver{
		sources: sources,
		logger:  logger,
	}
}

// Names — имена источников в порядке опроса
func (r *Resolver) Names() []domain.Source {
	out := make([]domain.Source, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, s.Name())
	}
	return out
}

// Resolve — текущая цена (и опорная, если kind её просит и источник умеет).
// Ошибки отдельных источников поглощаются, наружу только ErrAllSourcesExhausted
func (r *Resolver) Resolve(ctx context.Context, kind domain.RequestKind) (domain.Quote, error) {
	var errs []error
	for _, src := range r.sources {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		q, err := src.FetchQuote(ctx, kind)
		if err == nil {
			err = checkQuote(q)
		}
		if err != nil {
			r.logger.Warn("source failed, trying next", "source", src.Name(), "kind", kind.String(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}

		if q.Source == domain.SourceNone {
			q.Source = src.Name()
		}
		r.logger.Debug("price resolved", "source", q.Source, "price", q.CurrentPrice, "kind", kind.String())
		return q, nil
	}
	return domain.Quote{}, r.exhausted("resolve", errs)
}

// ResolveHistorical — цена на дату; участвуют только источники с историей
func (r *Resolver) ResolveHistorical(ctx context.Context, date time.Time) (domain.Quote, error) {
	var errs []error
	tried := 0
	for _, src := range r.sources {
		hs, ok := src.(HistorySource)
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		tried++

		q, err := hs.FetchHistorical(ctx, date)
		if err == nil {
			err = checkQuote(q)
		}
		if err != nil {
			r.logger.Warn("history source failed, trying next", "source", src.Name(), "date_key", domain.DateKey(date), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if q.Source == domain.SourceNone {
			q.Source = src.Name()
		}
		return q, nil
	}
	if tried == 0 && len(errs) == 0 {
		return domain.Quote{}, fmt.Errorf("%w: %w", derrors.ErrAllSourcesExhausted, derrors.ErrHistoryUnsupported)
	}
	return domain.Quote{}, r.exhausted("resolve historical", errs)
}

// ResolveDailyOpen — цена открытия суток UTC, для кэша дневной опорной цены
func (r *Resolver) ResolveDailyOpen(ctx context.Context) (float64, domain.Source, error) {
	var errs []error
	for _, src := range r.sources {
		ds, ok := src.(DailyOpenSource)
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		open, err := ds.FetchDailyOpen(ctx)
		if err == nil && !domain.IsValidPrice(open) {
			err = fmt.Errorf("%w: daily open must be positive, got %v", derrors.ErrSourceSchemaInvalid, open)
		}
		if err != nil {
			r.logger.Warn("daily open source failed, trying next", "source", src.Name(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		return open, src.Name(), nil
	}
	return 0, domain.SourceNone, r.exhausted("resolve daily open", errs)
}

func (r *Resolver) exhausted(op string, errs []error) error {
	r.logger.Error("all sources exhausted", "op", op, "tried", len(errs))
	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", op, derrors.ErrAllSourcesExhausted)
	}
	return fmt.Errorf("%s: %w: %w", op, derrors.ErrAllSourcesExhausted, errors.Join(errs...))
}

// checkQuote — защита от источника, вернувшего nil-ошибку с пустой ценой
func checkQuote(q domain.Quote) error {
	if !domain.IsValidPrice(q.CurrentPrice) {
		return fmt.Errorf("%w: current price must be positive, got %v", derrors.ErrSourceSchemaInvalid, q.CurrentPrice)
	}
	return nil
}
