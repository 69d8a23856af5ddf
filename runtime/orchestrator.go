// Package runtime wires the analysis pipeline: the inbox, the worker pool,
// telemetry and the supervisor. It contains no scoring rules.
package runtime

import (
	"context"
	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/domain/event"
	"emotion-lab/errors"
	"emotion-lab/observability"
	"emotion-lab/projection"
	"emotion-lab/runtime/workers"
	"emotion-lab/services"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config sizes the pipeline.
type Config struct {
	NumWorkers        int
	BufferSize        int
	FlushInterval     time.Duration
	HeartbeatInterval time.Duration
	MetricInterval    time.Duration
	LatencyThreshold  time.Duration
	NodeName          string
	MoodWindow        int
}

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	cfg        Config
	supervisor *workers.Supervisor
	service    services.IAnalyzerService
	monitoring *observability.MonitoringManager
	handlers   []event.Handler
	counter    *event.Counter
	mood       *projection.MoodTimeline
	inbox      chan event.Event
	events     chan event.Event
	started    bool
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor,
	service services.IAnalyzerService, monitoring *observability.MonitoringManager, cfg Config) *Orchestrator {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	cfg.FlushInterval = orDefault(cfg.FlushInterval, time.Second)
	cfg.HeartbeatInterval = orDefault(cfg.HeartbeatInterval, 5*time.Second)
	cfg.MetricInterval = orDefault(cfg.MetricInterval, time.Second)
	cfg.LatencyThreshold = orDefault(cfg.LatencyThreshold, 5*time.Second)
	return &Orchestrator{
		log:        log,
		cfg:        cfg,
		supervisor: supervisor,
		service:    service,
		monitoring: monitoring,
		counter:    event.NewCounter(),
		mood:       projection.NewMoodTimeline(log, cfg.MoodWindow),
		inbox:      make(chan event.Event, cfg.BufferSize),
		events:     make(chan event.Event, cfg.BufferSize),
	}
}

// Add registers extra handlers for the published events. Must be called before Start.
func (o *Orchestrator) Add(handlers ...event.Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers = append(o.handlers, handlers...)
}

// Submit queues a message for asynchronous analysis. It never blocks:
// a full inbox drops the message and returns ErrQueueFull.
func (o *Orchestrator) Submit(msg domain.Message) (uuid.UUID, error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.At.IsZero() {
		msg.At = time.Now().UTC()
	}
	e := event.New(event.MessageReceivedType, event.MessageReceived{
		ID:      msg.ID,
		ChatID:  msg.ChatID,
		Author:  msg.Author,
		Content: msg.Content,
		At:      msg.At,
	})
	select {
	case o.inbox <- e:
		return msg.ID, nil
	default:
		o.monitoring.IncrDropped()
		o.log.Warn("Analysis queue full, dropping message", "chat_id", msg.ChatID)
		return uuid.Nil, errors.ErrQueueFull
	}
}

// Start registers every worker to the supervisor and runs it until ctx is done.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return nil
	}
	o.started = true

	handlers := append([]event.Handler{
		event.NewLatencyHandler(o.log, o.cfg.LatencyThreshold),
		event.NewCensoredHandler(o.log, o.counter),
		event.NewWorkerRestartedAfterPanicHandler(o.log, o.counter),
		o.mood,
	}, o.handlers...)

	var pool []contract.Worker
	for i := 0; i < o.cfg.NumWorkers; i++ {
		pool = append(pool, workers.NewAnalysisWorker(o.service, o.inbox, o.events, o.log))
	}
	o.supervisor.WithEvents(o.events)
	o.supervisor.Add(pool...)
	o.supervisor.Add(
		workers.NewTelemetryWorker(o.log, o.events, handlers...),
		workers.NewIndexFlushWorker(o.service, o.cfg.FlushInterval, o.log),
		workers.NewChannelCapacityWorker(o.log, o.inbox, o.monitoring, o.cfg.MetricInterval),
		workers.NewHeartbeatWorker(o.log, o.monitoring, o.cfg.HeartbeatInterval, o.cfg.NodeName),
	)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", o.cfg.NumWorkers)
	o.supervisor.Run(ctx)
	return nil
}

// Counter counts the events published by the pipeline.
func (o *Orchestrator) Counter() *event.Counter {
	return o.counter
}

// Mood returns the recent mood of a chat as seen by the pipeline.
func (o *Orchestrator) Mood(chatID int64) projection.Mood {
	return o.mood.Mood(chatID)
}

// QueueLen returns the number of messages waiting for a worker.
func (o *Orchestrator) QueueLen() int {
	return len(o.inbox)
}

// Stop cancels the supervised context; workers stop at their next select.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
