package workers

import (
	"context"
	"emotion-lab/services"
	"log/slog"
	"time"
)

// IndexFlushWorker periodically makes stored analyses searchable and
// flushes one last time on shutdown.
type IndexFlushWorker struct {
	service  services.IAnalyzerService
	interval time.Duration
	log      *slog.Logger
}

func NewIndexFlushWorker(service services.IAnalyzerService, interval time.Duration, log *slog.Logger) *IndexFlushWorker {
	return &IndexFlushWorker{service: service, interval: interval, log: log}
}

func (w *IndexFlushWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if err := w.service.Flush(); err != nil {
				w.log.Error("Final index flush failed", "error", err)
			}
			return nil
		case <-ticker.C:
			if err := w.service.Flush(); err != nil {
				w.log.Warn("Index flush failed", "error", err)
			}
		}
	}
}
