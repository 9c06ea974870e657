package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/activity"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
)

//go:generate mockgen -source=scheduler.go -destination=mocks/mock_cycle.go -package=mocks

// Cycle — один цикл обновления цены
type Cycle interface {
	RunCycle(ctx context.Context) (presentation.Payload, error)
}

// Scheduler — периодический запуск цикла; период зависит от активности пользователя
type Scheduler struct {
	cycle   Cycle
	active  time.Duration
	idle    time.Duration
	logger  *slog.Logger
	mu      sync.Mutex
	period  time.Duration
	changed chan struct{}
}

// NewScheduler — конструктор планировщика фонового обновления цены
func NewScheduler(cycle Cycle, active, idle time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cycle:   cycle,
		active:  active,
		idle:    idle,
		logger:  logger,
		period:  active,
		changed: make(chan struct{}, 1),
	}
}

// SetActivity — единственная точка смены периода; перезапуск не нужен
func (s *Scheduler) SetActivity(state activity.State) {
	next := s.active
	if state == activity.Idle {
		next = s.idle
	}

	s.mu.Lock()
	if s.period == next {
		s.mu.Unlock()
		return
	}
	s.period = next
	s.mu.Unlock()

	// только сигнал: период Start перечитывает сам, порядок отправителей не важен
	select {
	case s.changed <- struct{}{}:
	default:
	}
	s.logger.Info("scheduler period changed", "state", state.String(), "period", next)
}

func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Start — запускает периодическое выполнение задачи до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started")
	s.logger.Debug("scheduler interval configured", slog.Duration("interval", s.Period()))

	ticker := time.NewTicker(s.Period())
	defer ticker.Stop()

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.changed:
			d := s.Period()
			ticker.Reset(d)
			s.logger.Debug("scheduler ticker reset", slog.Duration("interval", d))
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce — одна итерация: получить цену и отдать её в sink
func (s *Scheduler) runOnce(ctx context.Context) {
	s.logger.Debug("tick: running update cycle")
	if _, err := s.cycle.RunCycle(ctx); err != nil {
		s.logger.Error("tick: update cycle failed", slog.Any("err", err))
		return
	}
	s.logger.Debug("tick: completed")
}
