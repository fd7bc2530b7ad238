package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/vote-monitor/internal/logger"
)

// PeriodicWorker calls a task on every tick of its interval.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	clock    clockwork.Clock
	task     func(ctx context.Context)
	logger   *logger.Logger
}

// NewPeriodicWorker returns a worker running task every interval.
func NewPeriodicWorker(name string, interval time.Duration, clock clockwork.Clock, task func(ctx context.Context), log *logger.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		clock:    clock,
		task:     task,
		logger:   log,
	}
}

// Run ticks until ctx is cancelled. A non-positive interval disables the worker.
func (w *PeriodicWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn().Str("worker", w.name).Msg("non-positive interval, worker disabled")
		return
	}

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")
	for {
		select {
		case <-ticker.Chan():
			w.task(ctx)
		case <-ctx.Done():
			w.logger.Debug().Str("worker", w.name).Msg("worker stopped")
			return
		}
	}
}
