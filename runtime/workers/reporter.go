package workers

import (
	"anonpair/observability"
	"context"
	"log/slog"
	"time"
)

// ReporterWorker periodically logs a snapshot of the service counters so an
// operator can follow matching and relay activity without extra tooling.
type ReporterWorker struct {
	monitor  *observability.Monitor
	interval time.Duration
	log      *slog.Logger
}

func NewReporterWorker(monitor *observability.Monitor, interval time.Duration, log *slog.Logger) *ReporterWorker {
	return &ReporterWorker{monitor: monitor, interval: interval, log: log}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logStats()
			return nil
		case <-ticker.C:
			w.logStats()
		}
	}
}

func (w *ReporterWorker) logStats() {
	stats := w.monitor.GetLatest()
	w.log.Info("Service stats",
		"events", stats.EventsSeen,
		"matches", stats.MatchesMade,
		"sessions_ended", stats.SessionsEnded,
		"relayed", stats.ContentRelayed,
		"throttled", stats.ThrottledDrops,
		"relay_failures", stats.RelayFailures,
		"reports", stats.Reports,
	)
}
