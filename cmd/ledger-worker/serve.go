package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/bookkeeping/internal/infra/metrics"
	"github.com/finance-tracker/bookkeeping/internal/integration/scheduler"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recurring rule batch on an interval",
		Long: `Runs the batch immediately and then every WORKER_INTERVAL until interrupted.

Run counters are exposed on WORKER_METRICS_ADDR at /metrics.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().Duration("interval", 0, "batch interval; overrides WORKER_INTERVAL")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	if interval, _ := cmd.Flags().GetDuration("interval"); interval > 0 {
		cfg.Worker.Interval = interval
	}

	m := metrics.New()

	l, err := openLedger(cmd.Context(), cfg, m)
	if err != nil {
		return err
	}
	defer l.Close()

	worker := scheduler.NewWorker(l.injector.RunDueRules, m, cfg.Worker.Interval)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              cfg.Worker.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		return worker.Start(ctx)
	})

	g.Go(func() error {
		slog.Info("Worker metrics listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
