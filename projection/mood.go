// Package projection builds per-chat mood timelines from analyzed messages.
// It only consumes events: nothing here is persisted or published.
package projection

import (
	"emotion-lab/domain"
	"emotion-lab/domain/event"
	"emotion-lab/errors"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

type Trend string

const (
	TrendRising       Trend = "rising"
	TrendFalling      Trend = "falling"
	TrendStable       Trend = "stable"
	TrendInsufficient Trend = "insufficient"
)

const (
	DefaultWindow = 50
	// trendDelta is the change of negative share, in points, between the
	// older and the newer half of the window that counts as a trend.
	trendDelta = 20.0
	// minHalf is the number of messages each half needs before a trend is reported.
	minHalf = 3
	// gloomyShare raises a warning once per crossing.
	gloomyShare = 60.0
)

type Point struct {
	At       time.Time
	Author   string
	Emotion  domain.Emotion
	Severity domain.Severity
}

// Mood summarizes the window of one chat. NegativeShare is in [0,100].
type Mood struct {
	ChatID        int64          `json:"chat_id,string"`
	Messages      int            `json:"messages"`
	NegativeShare float64        `json:"negative_share"`
	Dominant      domain.Emotion `json:"dominant"`
	Trend         Trend          `json:"trend"`
}

type chatTimeline struct {
	points []Point
	gloomy bool
}

// MoodTimeline keeps the last window analyzed messages of every chat.
type MoodTimeline struct {
	mu     sync.RWMutex
	log    *slog.Logger
	window int
	chats  map[int64]*chatTimeline
}

var _ event.Handler = (*MoodTimeline)(nil)

func NewMoodTimeline(log *slog.Logger, window int) *MoodTimeline {
	if window < 2*minHalf {
		window = DefaultWindow
	}
	return &MoodTimeline{log: log, window: window, chats: make(map[int64]*chatTimeline)}
}

func (t *MoodTimeline) Handle(e event.Event) {
	if e.Type != event.MessageAnalyzedType {
		return
	}
	payload, ok := e.Payload.(event.MessageAnalyzed)
	if !ok {
		t.log.Error(errors.ErrInvalidPayload.Error(), "type", e.Type)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	chat, ok := t.chats[payload.ChatID]
	if !ok {
		chat = &chatTimeline{}
		t.chats[payload.ChatID] = chat
	}
	chat.points = append(chat.points, Point{
		At:       payload.ReceivedAt,
		Author:   payload.Author,
		Emotion:  payload.Dominant,
		Severity: payload.Severity,
	})
	if len(chat.points) > t.window {
		chat.points = chat.points[len(chat.points)-t.window:]
	}

	if len(chat.points) < 2*minHalf {
		return
	}
	share := negativeShare(chat.points)
	switch {
	case share >= gloomyShare && !chat.gloomy:
		chat.gloomy = true
		t.log.Warn("Chat mood degrading", "chat_id", payload.ChatID, "negative_share", share, "messages", len(chat.points))
	case share < gloomyShare && chat.gloomy:
		chat.gloomy = false
		t.log.Info("Chat mood recovered", "chat_id", payload.ChatID, "negative_share", share)
	}
}

// Mood returns the summary of a chat, zero valued when nothing was seen.
func (t *MoodTimeline) Mood(chatID int64) Mood {
	t.mu.RLock()
	defer t.mu.RUnlock()
	mood := Mood{ChatID: chatID, Dominant: domain.EmotionNeutral, Trend: TrendInsufficient}
	chat, ok := t.chats[chatID]
	if !ok || len(chat.points) == 0 {
		return mood
	}

	points := chat.points
	mood.Messages = len(points)
	mood.NegativeShare = negativeShare(points)
	mood.Dominant = dominant(points)

	half := len(points) / 2
	if half < minHalf {
		return mood
	}
	delta := negativeShare(points[len(points)-half:]) - negativeShare(points[:len(points)-half])
	switch {
	case delta >= trendDelta:
		mood.Trend = TrendRising
	case delta <= -trendDelta:
		mood.Trend = TrendFalling
	default:
		mood.Trend = TrendStable
	}
	return mood
}

func negativeShare(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	negative := lo.CountBy(points, func(p Point) bool { return p.Emotion.IsNegative() })
	return float64(negative) * 100 / float64(len(points))
}

// dominant picks the most frequent scored emotion, ties going to domain.Emotions order.
// Neutral only wins when it outnumbers every scored emotion.
func dominant(points []Point) domain.Emotion {
	counts := lo.CountValuesBy(points, func(p Point) domain.Emotion { return p.Emotion })
	best, bestCount := domain.EmotionNeutral, 0
	for _, e := range domain.Emotions {
		if counts[e] > bestCount {
			best, bestCount = e, counts[e]
		}
	}
	if counts[domain.EmotionNeutral] > bestCount {
		return domain.EmotionNeutral
	}
	return best
}
