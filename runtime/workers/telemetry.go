package workers

import (
	"context"
	"emotion-lab/domain/event"
	"log/slog"
)

// TelemetryWorker hands every published event to the handlers, in order.
type TelemetryWorker struct {
	log      *slog.Logger
	events   <-chan event.Event
	handlers []event.Handler
}

func NewTelemetryWorker(log *slog.Logger, events <-chan event.Event, handlers ...event.Handler) *TelemetryWorker {
	return &TelemetryWorker{log: log, events: events, handlers: handlers}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.handle(evt)
		}
	}
}

func (w *TelemetryWorker) handle(e event.Event) {
	for _, h := range w.handlers {
		h.Handle(e)
	}
}
