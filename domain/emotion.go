// Package domain contains the value types shared by the scoring pipeline
// and its collaborators (storage, alerting, transport).
package domain

import "fmt"

// Emotion is the dominant emotion resolved for a message.
type Emotion string

const (
	EmotionAggression Emotion = "aggression"
	EmotionStress     Emotion = "stress"
	EmotionSarcasm    Emotion = "sarcasm"
	EmotionPositivity Emotion = "positivity"
	EmotionNeutral    Emotion = "neutral"
)

// Emotions lists the scored emotions in tie-break preference order:
// safety signals outrank sentiment signals.
var Emotions = []Emotion{EmotionAggression, EmotionStress, EmotionSarcasm, EmotionPositivity}

// IsNegative reports whether the emotion is one moderation cares about.
func (e Emotion) IsNegative() bool {
	return e == EmotionAggression || e == EmotionStress || e == EmotionSarcasm
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
)

// Mode selects how an analyzer obtains its scores.
type Mode int

const (
	ModeLocalOnly Mode = iota
	ModeLocalPlusRemote
)

func (m Mode) String() string {
	switch m {
	case ModeLocalOnly:
		return "local"
	case ModeLocalPlusRemote:
		return "local+remote"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// EmotionCategories holds the five bounded category scores, each in [0,100].
// Toxicity is always derived from aggression and stress.
type EmotionCategories struct {
	Aggression float64 `json:"aggression"`
	Stress     float64 `json:"stress"`
	Sarcasm    float64 `json:"sarcasm"`
	Toxicity   float64 `json:"toxicity"`
	Positivity float64 `json:"positivity"`
}

// Score returns the category score matching the emotion, 0 for neutral.
func (c EmotionCategories) Score(e Emotion) float64 {
	switch e {
	case EmotionAggression:
		return c.Aggression
	case EmotionStress:
		return c.Stress
	case EmotionSarcasm:
		return c.Sarcasm
	case EmotionPositivity:
		return c.Positivity
	default:
		return 0
	}
}

// With returns a copy of c where the emotion's category is set to v.
func (c EmotionCategories) With(e Emotion, v float64) EmotionCategories {
	switch e {
	case EmotionAggression:
		c.Aggression = v
	case EmotionStress:
		c.Stress = v
	case EmotionSarcasm:
		c.Sarcasm = v
	case EmotionPositivity:
		c.Positivity = v
	}
	return c
}
