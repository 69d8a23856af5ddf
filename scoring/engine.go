// Package scoring turns feature signals into bounded category scores, the
// dominant emotion and a severity tier.
package scoring

import (
	"emotion-lab/domain"
	"emotion-lab/features"
	"math"
)

const (
	minScore = 0
	maxScore = 100
)

// Thresholds are the named constants of aggregation and tiering.
type Thresholds struct {
	// A category is dominant only when its score is strictly above Dominant.
	Dominant float64

	CriticalToxicity   float64
	CriticalAggression float64
	HighToxicity       float64
	HighConfidence     float64
	MediumConfidence   float64

	ToxicityAggression float64
	ToxicityStress     float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Dominant:           25,
		CriticalToxicity:   85,
		CriticalAggression: 80,
		HighToxicity:       65,
		HighConfidence:     60,
		MediumConfidence:   35,
		ToxicityAggression: 0.8,
		ToxicityStress:     0.4,
	}
}

// Verdict is the outcome of scoring one message.
type Verdict struct {
	Categories domain.EmotionCategories
	Dominant   domain.Emotion
	Confidence float64
	Severity   domain.Severity
}

type Engine struct {
	thresholds Thresholds
}

func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Aggregate clamps the summed signals and derives toxicity.
func (e *Engine) Aggregate(s features.Signals) domain.EmotionCategories {
	return e.Bound(domain.EmotionCategories{
		Aggression: s.Aggression,
		Stress:     s.Stress,
		Sarcasm:    s.Sarcasm,
		Positivity: s.Positivity,
	})
}

// Bound clamps every category to [0,100] and recomputes toxicity, whatever
// toxicity value c carries.
func (e *Engine) Bound(c domain.EmotionCategories) domain.EmotionCategories {
	c.Aggression = Clamp(c.Aggression)
	c.Stress = Clamp(c.Stress)
	c.Sarcasm = Clamp(c.Sarcasm)
	c.Positivity = Clamp(c.Positivity)
	c.Toxicity = e.Toxicity(c.Aggression, c.Stress)
	return c
}

// Toxicity is min(100, aggression*0.8 + stress*0.4) with the default coefficients.
func (e *Engine) Toxicity(aggression, stress float64) float64 {
	return Clamp(aggression*e.thresholds.ToxicityAggression + stress*e.thresholds.ToxicityStress)
}

// Finalize resolves the dominant emotion, the confidence and the severity.
// Ties go to the first emotion of domain.Emotions.
func (e *Engine) Finalize(c domain.EmotionCategories) Verdict {
	c = e.Bound(c)

	best := domain.EmotionNeutral
	var confidence float64
	for _, emotion := range domain.Emotions {
		if score := c.Score(emotion); score > confidence {
			best, confidence = emotion, score
		}
	}
	if confidence <= e.thresholds.Dominant {
		best = domain.EmotionNeutral
	}

	return Verdict{
		Categories: c,
		Dominant:   best,
		Confidence: confidence,
		Severity:   e.severity(c),
	}
}

// severity reads confidence as the strongest negative category, so a very
// positive message stays low.
func (e *Engine) severity(c domain.EmotionCategories) domain.Severity {
	t := e.thresholds
	negative := max(c.Aggression, c.Stress, c.Sarcasm)
	switch {
	case c.Toxicity > t.CriticalToxicity || c.Aggression > t.CriticalAggression:
		return domain.SeverityCritical
	case c.Toxicity > t.HighToxicity || negative > t.HighConfidence:
		return domain.SeverityHigh
	case negative > t.MediumConfidence:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// Clamp bounds v to [0,100]; NaN becomes 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return minScore
	}
	return math.Min(maxScore, math.Max(minScore, v))
}
