package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	schedmocks "github.com/NastyaGoryachaya/btc-ticker-service/internal/scheduler/mocks"
	"github.com/golang/mock/gomock"
)

func TestNewWarmup_InvalidSpec(t *testing.T) {
	if _, err := NewWarmup("every midnight", nil, time.Second, slog.Default()); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
	// без поля секунд выражение тоже невалидно
	if _, err := NewWarmup("0 0 * * *", nil, time.Second, slog.Default()); err == nil {
		t.Fatalf("expected error for 5-field spec")
	}
}

func TestWarmup_NextRunIsAfterUTCMidnight(t *testing.T) {
	w, err := NewWarmup("5 0 0 * * *", nil, time.Second, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := w.cron.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	from := time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)
	next := entries[0].Schedule.Next(from)
	want := time.Date(2025, 1, 3, 0, 0, 5, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("next run %v, want %v", next, want)
	}
}

func TestWarmup_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	warmer := schedmocks.NewMockWarmer(ctrl)
	gomock.InOrder(
		warmer.EXPECT().Warm(gomock.Any()).Return(nil),
		warmer.EXPECT().Warm(gomock.Any()).Return(errors.New("all sources exhausted")),
	)

	w, err := NewWarmup("5 0 0 * * *", warmer, time.Second, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.runOnce()
	w.runOnce()
}

func TestWarmup_StartStops(t *testing.T) {
	w, err := NewWarmup("5 0 0 * * *", nil, time.Second, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("warmup did not stop")
	}
}
