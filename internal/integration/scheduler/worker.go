// Package scheduler drives the recurring rule batch on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// BatchRunner runs one pass over the due recurring rules.
type BatchRunner interface {
	Execute(ctx context.Context) (*entity.RunSummary, error)
}

// RunObserver receives the summary of every completed pass.
type RunObserver interface {
	ObserveRun(summary *entity.RunSummary, finishedAt time.Time)
}

// Worker runs the batch once on start and then on every tick.
type Worker struct {
	runner   BatchRunner
	observer RunObserver
	interval time.Duration
}

// NewWorker creates a new worker. observer may be nil.
func NewWorker(runner BatchRunner, observer RunObserver, interval time.Duration) *Worker {
	return &Worker{
		runner:   runner,
		observer: observer,
		interval: interval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	slog.Info("Recurring rule worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunNow(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Recurring rule worker shutting down")
			return nil
		case <-ticker.C:
			w.RunNow(ctx)
		}
	}
}

// RunNow runs a single pass and reports its summary. Failures are logged.
func (w *Worker) RunNow(ctx context.Context) *entity.RunSummary {
	started := time.Now()

	summary, err := w.runner.Execute(ctx)
	if err != nil {
		slog.Error("Recurring rule batch failed", "error", err)
		if summary == nil {
			return nil
		}
	}

	if w.observer != nil {
		w.observer.ObserveRun(summary, time.Now())
	}

	slog.Info("Recurring rule batch finished",
		"executed", summary.Executed,
		"exhausted", summary.Exhausted,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"durationMs", time.Since(started).Milliseconds(),
	)

	return summary
}
