package workers

import (
	"context"
	"emotion-lab/domain/event"
	"emotion-lab/observability"
	"log/slog"
	"time"
)

// ChannelCapacityWorker periodically samples the inbox length and capacity.
// Reading len(channel) and cap(channel) is non-blocking, so this won't
// interfere with the analysis workers.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	inbox          chan event.Event
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
	warnRatio      float64
}

func NewChannelCapacityWorker(log *slog.Logger, inbox chan event.Event,
	monitoring *observability.MonitoringManager, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		inbox:          inbox,
		monitoring:     monitoring,
		metricInterval: metricInterval,
		warnRatio:      0.8,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *ChannelCapacityWorker) sample() {
	length, capacity := len(w.inbox), cap(w.inbox)
	w.monitoring.UpdateQueue(length, uint32(capacity))
	if capacity > 0 && float64(length) >= w.warnRatio*float64(capacity) {
		w.log.Warn("Analysis queue almost full", "length", length, "capacity", capacity)
	}
}
