package event

import (
	"emotion-lab/errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// CensoredHandler counts analyzed messages and how often each word was masked.
type CensoredHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter *Counter
	hit     map[string]uint64
}

func NewCensoredHandler(log *slog.Logger, counter *Counter) *CensoredHandler {
	return &CensoredHandler{
		log:     log,
		counter: counter,
		hit:     make(map[string]uint64),
	}
}

func (h *CensoredHandler) Handle(event Event) {
	switch event.Type {
	case MessageAnalyzedType:
		payload, ok := event.Payload.(MessageAnalyzed)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.mu.Lock()
		defer h.mu.Unlock()
		h.counter.Increment(MessageAnalyzedType)
		for _, word := range payload.CensoredWords {
			h.hit[word]++
		}
	case AnalysisFailedType:
		h.counter.Increment(AnalysisFailedType)
	}
}

// TopWords returns up to n masked words, most frequent first.
func (h *CensoredHandler) TopWords(n int) []lo.Entry[string, uint64] {
	h.mu.Lock()
	entries := lo.Entries(h.hit)
	h.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
