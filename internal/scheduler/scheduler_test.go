package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/activity"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	schedmocks "github.com/NastyaGoryachaya/btc-ticker-service/internal/scheduler/mocks"
	"github.com/golang/mock/gomock"
)

// Первый цикл выполняется сразу, не дожидаясь тика
func TestStart_RunsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cycle := schedmocks.NewMockCycle(ctrl)
	cycle.EXPECT().RunCycle(gomock.Any()).
		DoAndReturn(func(context.Context) (presentation.Payload, error) {
			cancel()
			return presentation.Payload{}, errors.New("all sources exhausted")
		}).
		Times(1)

	s := NewScheduler(cycle, time.Hour, time.Hour, slog.Default())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler did not stop")
	}
}

func TestSetActivity_SwitchesPeriod(t *testing.T) {
	s := NewScheduler(nil, time.Minute, 5*time.Minute, slog.Default())
	if s.Period() != time.Minute {
		t.Fatalf("initial period must be active interval, got %v", s.Period())
	}

	s.SetActivity(activity.Idle)
	if s.Period() != 5*time.Minute {
		t.Fatalf("expected idle period, got %v", s.Period())
	}
	// тот же state — период не меняется, лишних сигналов нет
	s.SetActivity(activity.Idle)
	s.SetActivity(activity.Active)

	select {
	case <-s.changed:
	default:
		t.Fatalf("period change was not signalled")
	}
	select {
	case <-s.changed:
		t.Fatalf("unexpected extra signal")
	default:
	}
	if s.Period() != time.Minute {
		t.Fatalf("expected active period, got %v", s.Period())
	}
}

// Конкурентные вызовы без работающего Start не блокируются, сигнал не больше одного
func TestSetActivity_ConcurrentCallersNeverBlock(t *testing.T) {
	s := NewScheduler(nil, time.Minute, 5*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					s.SetActivity(activity.Idle)
				} else {
					s.SetActivity(activity.Active)
				}
			}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("SetActivity blocked")
	}

	if len(s.changed) > 1 {
		t.Fatalf("at most one pending signal expected, got %d", len(s.changed))
	}
	if p := s.Period(); p != time.Minute && p != 5*time.Minute {
		t.Fatalf("unexpected period %v", p)
	}
}

// Смена периода применяется к работающему тикеру без перезапуска
func TestStart_ResetsTickerOnActivityChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 4)
	cycle := schedmocks.NewMockCycle(ctrl)
	cycle.EXPECT().RunCycle(gomock.Any()).
		DoAndReturn(func(context.Context) (presentation.Payload, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return presentation.Payload{}, nil
		}).
		MinTimes(2)

	// active — час, idle — 20ms: второй запуск возможен только после Reset
	s := NewScheduler(cycle, time.Hour, 20*time.Millisecond, slog.Default())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	waitRun := func() {
		t.Helper()
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatalf("cycle did not run")
		}
	}

	waitRun()
	s.SetActivity(activity.Idle)
	waitRun()

	cancel()
	<-done
}
