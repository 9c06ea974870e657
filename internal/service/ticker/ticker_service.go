package ticker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/dailyref"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Один цикл обновления: текущая цена, опорная цена по режиму, результат в sink

//go:generate mockgen -source=ticker_service.go -destination=mocks/mock_ticker.go -package=mocks

type PriceResolver interface {
	Resolve(ctx context.Context, kind domain.RequestKind) (domain.Quote, error)
	ResolveHistorical(ctx context.Context, date time.Time) (domain.Quote, error)
}

// ReferenceProvider — кэш дневной опорной цены
type ReferenceProvider interface {
	Reference(ctx context.Context) (float64, domain.Source, bool)
}

type Service struct {
	resolver  PriceResolver
	reference ReferenceProvider
	sink      presentation.Sink
	mode      string
	clock     dailyref.Clock
	logger    *slog.Logger

	// последний успешный результат, для чтения из транспорта
	mu   sync.RWMutex
	last presentation.Payload
}

func NewService(resolver PriceResolver, reference ReferenceProvider, sink presentation.Sink, mode string, logger *slog.Logger) *Service {
	return NewServiceWithClock(resolver, reference, sink, mode, dailyref.NewRealClock(), logger)
}

// NewServiceWithClock - Конструктор для тестов: позволяет подставить фиксированные "часы".
func NewServiceWithClock(resolver PriceResolver, reference ReferenceProvider, sink presentation.Sink, mode string, clk dailyref.Clock, logger *slog.Logger) *Service {
	if mode == "" {
		mode = config.ReferenceDailyOpen
	}
	return &Service{
		resolver:  resolver,
		reference: reference,
		sink:      sink,
		mode:      mode,
		clock:     clk,
		logger:    logger,
	}
}

// RunCycle — один проход без повторов; при отказе всех источников sink получает ошибку
func (s *Service) RunCycle(ctx context.Context) (presentation.Payload, error) {
	log := s.logger.With("cycle_id", uuid.NewString(), "mode", s.mode)
	log.Debug("update cycle started")

	var (
		p   presentation.Payload
		err error
	)
	switch s.mode {
	case config.ReferenceTicker24h:
		p, err = s.cycleTicker24h(ctx, log)
	case config.ReferenceRolling24h:
		p, err = s.cycleRolling24h(ctx, log)
	default:
		p, err = s.cycleDailyOpen(ctx, log)
	}

	if err != nil {
		log.Error("update cycle failed", "err", err)
		s.sink.ShowError(ctx, err.Error())
		return presentation.Payload{}, err
	}

	p.At = s.clock.Now()
	s.mu.Lock()
	s.last = p
	s.mu.Unlock()

	s.sink.ShowSuccess(ctx, p)
	log.Debug("update cycle completed", "source", p.Source, "reference_source", p.ReferenceSource)
	return p, nil
}

// Last — последний успешный результат; ok=false до первого успеха
func (s *Service) Last() (presentation.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, !s.last.At.IsZero()
}

// daily_open: текущая цена и кэш дневной опорной цены параллельно
func (s *Service) cycleDailyOpen(ctx context.Context, log *slog.Logger) (presentation.Payload, error) {
	var (
		current domain.Quote
		ref     float64
		refSrc  domain.Source
		refOK   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.resolver.Resolve(gctx, domain.KindCurrentOnly)
		if err != nil {
			return err
		}
		current = q
		return nil
	})
	g.Go(func() error {
		// отсутствие опорной цены не ошибка цикла
		ref, refSrc, refOK = s.reference.Reference(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return presentation.Payload{}, err
	}

	p := presentation.Payload{CurrentPrice: current.CurrentPrice, Source: current.Source}
	if refOK {
		applyReference(&p, ref, refSrc)
	} else {
		log.Warn("daily reference unavailable, variation skipped")
	}
	return p, nil
}

// ticker_24h: один запрос с опорной ценой; если источник её не дал — кэш
func (s *Service) cycleTicker24h(ctx context.Context, log *slog.Logger) (presentation.Payload, error) {
	q, err := s.resolver.Resolve(ctx, domain.KindCurrentAndReference)
	if err != nil {
		return presentation.Payload{}, err
	}

	p := presentation.Payload{CurrentPrice: q.CurrentPrice, Source: q.Source}
	if q.OpenPrice != nil {
		applyReference(&p, *q.OpenPrice, q.Source)
		if q.VariationPct != nil && p.VariationPct != nil {
			// процент источника относится к той же котировке
			p.VariationPct = domain.Float(*q.VariationPct)
		}
		return p, nil
	}

	log.Debug("source returned no reference, falling back to daily cache", "source", q.Source)
	if ref, refSrc, ok := s.reference.Reference(ctx); ok {
		applyReference(&p, ref, refSrc)
	} else {
		log.Warn("daily reference unavailable, variation skipped")
	}
	return p, nil
}

// rolling_24h: текущая цена и историческая цена ровно сутки назад
func (s *Service) cycleRolling24h(ctx context.Context, log *slog.Logger) (presentation.Payload, error) {
	var current, past domain.Quote
	var pastErr error
	dayAgo := s.clock.Now().Add(-24 * time.Hour)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.resolver.Resolve(gctx, domain.KindCurrentOnly)
		if err != nil {
			return err
		}
		current = q
		return nil
	})
	g.Go(func() error {
		past, pastErr = s.resolver.ResolveHistorical(gctx, dayAgo)
		return nil
	})
	if err := g.Wait(); err != nil {
		return presentation.Payload{}, err
	}

	p := presentation.Payload{CurrentPrice: current.CurrentPrice, Source: current.Source}
	if pastErr != nil {
		log.Warn("historical reference unavailable, variation skipped", "date_key", domain.DateKey(dayAgo), "err", pastErr)
		return p, nil
	}
	applyReference(&p, past.CurrentPrice, past.Source)
	return p, nil
}

// applyReference — опорная цена и вычисленное изменение; ноль — изменения нет
func applyReference(p *presentation.Payload, ref float64, src domain.Source) {
	p.ReferencePrice = domain.Float(ref)
	p.ReferenceSource = src
	if pct, ok := domain.Variation(p.CurrentPrice, ref); ok {
		p.VariationPct = domain.Float(pct)
	}
}
