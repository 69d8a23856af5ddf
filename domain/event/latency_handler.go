package event

import (
	"log/slog"
	"time"
)

// LatencyHandler reports how long a message waited between reception and
// the end of its analysis.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	payload, ok := e.Payload.(MessageAnalyzed)
	if !ok {
		return
	}
	leadTime := e.CreatedAt.Sub(payload.ReceivedAt)

	h.log.Debug("telemetry: processing latency",
		"chat_id", payload.ChatID,
		"author", payload.Author,
		"lead_time_ms", leadTime.Milliseconds(),
	)
	if leadTime > h.latencyThreshold {
		h.log.Warn("high latency detected", "chat_id", payload.ChatID, "lead_time", leadTime)
	}
}
