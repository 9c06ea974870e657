package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

//go:generate mockgen -source=warmup.go -destination=mocks/mock_warmer.go -package=mocks

// Warmer — кэш дневной опорной цены
type Warmer interface {
	Warm(ctx context.Context) error
}

// Warmup — ежедневный прогрев кэша сразу после полуночи UTC
type Warmup struct {
	cron    *cron.Cron
	warmer  Warmer
	timeout time.Duration
	logger  *slog.Logger
}

// NewWarmup — spec в формате cron с секундами, время UTC
func NewWarmup(spec string, warmer Warmer, timeout time.Duration, logger *slog.Logger) (*Warmup, error) {
	w := &Warmup{
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		warmer:  warmer,
		timeout: timeout,
		logger:  logger,
	}
	if _, err := w.cron.AddFunc(spec, w.runOnce); err != nil {
		return nil, fmt.Errorf("register warmup %q: %w", spec, err)
	}
	return w, nil
}

// Start — работает до отмены ctx, затем ждёт завершения запущенной задачи
func (w *Warmup) Start(ctx context.Context) {
	w.cron.Start()
	if entries := w.cron.Entries(); len(entries) > 0 {
		w.logger.Info("warmup scheduled", "next", entries[0].Next)
	}
	<-ctx.Done()
	<-w.cron.Stop().Done()
	w.logger.Info("warmup stopped")
}

func (w *Warmup) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.warmer.Warm(ctx); err != nil {
		w.logger.Error("warmup failed", "err", err)
		return
	}
	w.logger.Info("warmup completed")
}
