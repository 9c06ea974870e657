package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Сигнал активности пользователя: active/idle

type State int

const (
	Active State = iota
	Idle
)

func (s State) String() string {
	if s == Idle {
		return "idle"
	}
	return "active"
}

func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return Active, nil
	case "idle":
		return Idle, nil
	}
	return Active, fmt.Errorf("unknown activity state %q", s)
}

// Listener — вызывается только при смене состояния
type Listener func(State)

// Monitor — active, пока с последнего Touch прошло меньше threshold
type Monitor struct {
	mu        sync.Mutex
	state     State
	lastTouch time.Time
	threshold time.Duration
	listeners []Listener
	now       func() time.Time
	logger    *slog.Logger
}

func NewMonitor(threshold time.Duration, logger *slog.Logger) *Monitor {
	m := &Monitor{
		state:     Active,
		threshold: threshold,
		now:       time.Now,
		logger:    logger,
	}
	m.lastTouch = m.now()
	return m
}

// OnChange — подписка на смену состояния
func (m *Monitor) OnChange(l Listener) {
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
}

func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Touch — пользователь что-то сделал (запрос HTTP, команда бота)
func (m *Monitor) Touch() {
	m.mu.Lock()
	m.lastTouch = m.now()
	m.mu.Unlock()
	m.transition(Active, "touch")
}

// Set — явный сигнал от клиента
func (m *Monitor) Set(state State) {
	if state == Active {
		m.mu.Lock()
		m.lastTouch = m.now()
		m.mu.Unlock()
	}
	m.transition(state, "explicit")
}

// Run — фоновая проверка простоя раз в threshold, до отмены ctx
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.threshold)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.check()
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) check() {
	m.mu.Lock()
	idle := m.state == Active && m.now().Sub(m.lastTouch) >= m.threshold
	m.mu.Unlock()
	if idle {
		m.transition(Idle, "timeout")
	}
}

func (m *Monitor) transition(to State, reason string) {
	m.mu.Lock()
	if m.state == to {
		m.mu.Unlock()
		return
	}
	m.state = to
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	m.logger.Debug("activity state changed", "state", to.String(), "reason", reason)
	for _, l := range listeners {
		l(to)
	}
}
