package event

import (
	"emotion-lab/domain"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MessageReceivedType     Type = "MESSAGE_RECEIVED"
	MessageAnalyzedType     Type = "MESSAGE_ANALYZED"
	AnalysisFailedType      Type = "ANALYSIS_FAILED"
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
)

// Event is the envelope carried by the worker channels.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

// MessageReceived is a chat message waiting for analysis.
type MessageReceived struct {
	ID      uuid.UUID
	ChatID  int64
	Author  string
	Content string
	At      time.Time
}

// MessageAnalyzed is published once a message is scored and stored.
type MessageAnalyzed struct {
	MessageID     uuid.UUID
	ChatID        int64
	Author        string
	Dominant      domain.Emotion
	Severity      domain.Severity
	Tier          domain.AlertTier
	Alerts        []domain.Alert
	CensoredWords []string
	Language      string
	ReceivedAt    time.Time
}

type AnalysisFailed struct {
	MessageID uuid.UUID
	ChatID    int64
	Reason    string
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

// Counter counts events per type.
type Counter struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}
