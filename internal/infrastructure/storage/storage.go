package storage

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slog"
)

const pingTimeout = 2 * time.Second

// Pinger is a database handle that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor keeps the last known connectivity of a database in memory, so
// readers never wait on the network. It implements docstore.Prober.
type Monitor struct {
	db        Pinger
	interval  time.Duration
	connected atomic.Bool
	log       *slog.Logger

	onChange func(connected bool)
}

func NewMonitor(db Pinger, interval time.Duration, log *slog.Logger) *Monitor {
	return &Monitor{
		db:       db,
		interval: interval,
		log:      log.With("component", "db_monitor"),
	}
}

// OnChange registers fn to be called after every connectivity transition.
// It must be set before Run.
func (m *Monitor) OnChange(fn func(connected bool)) {
	m.onChange = fn
}

func (m *Monitor) Connected() bool {
	return m.connected.Load()
}

// Check pings the database once and records the result.
func (m *Monitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := m.db.Ping(ctx)
	up := err == nil
	if m.connected.Swap(up) == up {
		return up
	}

	if up {
		m.log.Info("database connected")
	} else {
		m.log.Warn("database unreachable", slog.String("error", err.Error()))
	}
	if m.onChange != nil {
		m.onChange(up)
	}
	return up
}

// Run checks connectivity every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	if m.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
