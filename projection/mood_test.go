package projection

import (
	"emotion-lab/domain"
	"emotion-lab/domain/event"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func analyzed(chatID int64, emotion domain.Emotion, at time.Time) event.Event {
	return event.New(event.MessageAnalyzedType, event.MessageAnalyzed{
		ChatID:     chatID,
		Author:     "alice",
		Dominant:   emotion,
		Severity:   domain.SeverityLow,
		ReceivedAt: at,
	})
}

func feed(timeline *MoodTimeline, chatID int64, emotions ...domain.Emotion) {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, e := range emotions {
		timeline.Handle(analyzed(chatID, e, at.Add(time.Duration(i)*time.Minute)))
	}
}

func repeat(e domain.Emotion, n int) []domain.Emotion {
	out := make([]domain.Emotion, n)
	for i := range out {
		out[i] = e
	}
	return out
}

// points copies the timeline of a chat, oldest first.
func points(timeline *MoodTimeline, chatID int64) []Point {
	timeline.mu.RLock()
	defer timeline.mu.RUnlock()
	chat, ok := timeline.chats[chatID]
	if !ok {
		return nil
	}
	return append([]Point(nil), chat.points...)
}

func TestMoodTimeline_UnknownChat(t *testing.T) {
	req := require.New(t)
	timeline := NewMoodTimeline(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	mood := timeline.Mood(1)

	req.Zero(mood.Messages)
	req.Equal(domain.EmotionNeutral, mood.Dominant)
	req.Equal(TrendInsufficient, mood.Trend)
}

func TestMoodTimeline_RisingNegativity(t *testing.T) {
	req := require.New(t)
	timeline := NewMoodTimeline(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	// Given a calm start then a burst of aggression
	feed(timeline, 1, append(repeat(domain.EmotionPositivity, 5), repeat(domain.EmotionAggression, 5)...)...)

	// When summarizing the chat
	mood := timeline.Mood(1)

	// Then the newer half is far more negative than the older one
	req.Equal(10, mood.Messages)
	req.Equal(50.0, mood.NegativeShare)
	req.Equal(domain.EmotionAggression, mood.Dominant)
	req.Equal(TrendRising, mood.Trend)
}

func TestMoodTimeline_FallingAndStable(t *testing.T) {
	req := require.New(t)
	timeline := NewMoodTimeline(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	feed(timeline, 1, append(repeat(domain.EmotionStress, 5), repeat(domain.EmotionNeutral, 5)...)...)
	feed(timeline, 2, repeat(domain.EmotionSarcasm, 8)...)

	req.Equal(TrendFalling, timeline.Mood(1).Trend)
	req.Equal(TrendStable, timeline.Mood(2).Trend)
	req.Equal(100.0, timeline.Mood(2).NegativeShare)
}

func TestMoodTimeline_WindowIsBounded(t *testing.T) {
	req := require.New(t)
	timeline := NewMoodTimeline(logs.GetLoggerFromLevel(slog.LevelDebug), 6)

	feed(timeline, 1, append(repeat(domain.EmotionAggression, 4), repeat(domain.EmotionPositivity, 6)...)...)

	kept := points(timeline, 1)
	req.Len(kept, 6)
	req.Equal(domain.EmotionPositivity, kept[0].Emotion)
	req.Zero(timeline.Mood(1).NegativeShare)
}

func TestMoodTimeline_IgnoresOtherEvents(t *testing.T) {
	req := require.New(t)
	timeline := NewMoodTimeline(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	timeline.Handle(event.New(event.AnalysisFailedType, event.AnalysisFailed{}))
	timeline.Handle(event.Event{Type: event.MessageAnalyzedType, Payload: "garbage"})

	req.Nil(points(timeline, 0))
}

func TestMoodTimeline_DominantTies(t *testing.T) {
	req := require.New(t)
	timeline := NewMoodTimeline(logs.GetLoggerFromLevel(slog.LevelDebug), 12)

	// Given a tie between neutral and a scored emotion
	feed(timeline, 1, append(repeat(domain.EmotionNeutral, 3), repeat(domain.EmotionStress, 3)...)...)
	// And a tie between two scored emotions
	feed(timeline, 2, append(repeat(domain.EmotionPositivity, 2), repeat(domain.EmotionSarcasm, 2)...)...)
	// And neutral outnumbering every scored emotion
	feed(timeline, 3, append(repeat(domain.EmotionNeutral, 4), repeat(domain.EmotionAggression, 3)...)...)

	// Then the scored emotion wins the first tie
	req.Equal(domain.EmotionStress, timeline.Mood(1).Dominant)
	// And Emotions order breaks the second
	req.Equal(domain.EmotionSarcasm, timeline.Mood(2).Dominant)
	// And neutral only wins with a strict majority count
	req.Equal(domain.EmotionNeutral, timeline.Mood(3).Dominant)
}
