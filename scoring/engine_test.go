package scoring

import (
	"emotion-lab/domain"
	"emotion-lab/features"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate_ClampsAndDerivesToxicity(t *testing.T) {
	req := require.New(t)
	e := NewEngine(DefaultThresholds())

	// Given signals beyond the bounds
	c := e.Aggregate(features.Signals{Aggression: 140, Stress: 55, Sarcasm: 0, Positivity: 300})

	// Then categories are clamped and toxicity derived from the clamped values
	req.Equal(100.0, c.Aggression)
	req.Equal(55.0, c.Stress)
	req.Equal(100.0, c.Positivity)
	req.Equal(100.0, c.Toxicity)

	c = e.Aggregate(features.Signals{Aggression: 30, Stress: 20})
	req.InDelta(32.0, c.Toxicity, 1e-9)
}

func TestBound_IgnoresGivenToxicityAndNaN(t *testing.T) {
	req := require.New(t)
	e := NewEngine(DefaultThresholds())

	c := e.Bound(domain.EmotionCategories{Aggression: math.NaN(), Stress: -5, Toxicity: 99})
	req.Zero(c.Aggression)
	req.Zero(c.Stress)
	req.Zero(c.Toxicity)
}

func TestFinalize_Dominant(t *testing.T) {
	req := require.New(t)
	e := NewEngine(DefaultThresholds())

	tests := []struct {
		name       string
		categories domain.EmotionCategories
		dominant   domain.Emotion
		confidence float64
	}{
		{name: "All zero", dominant: domain.EmotionNeutral, confidence: 0},
		{
			name:       "At the threshold stays neutral",
			categories: domain.EmotionCategories{Positivity: 25},
			dominant:   domain.EmotionNeutral,
			confidence: 25,
		},
		{
			name:       "Above the threshold",
			categories: domain.EmotionCategories{Positivity: 30},
			dominant:   domain.EmotionPositivity,
			confidence: 30,
		},
		{
			name:       "Aggression wins a tie with stress",
			categories: domain.EmotionCategories{Aggression: 30, Stress: 30},
			dominant:   domain.EmotionAggression,
			confidence: 30,
		},
		{
			name:       "Stress wins a tie with sarcasm",
			categories: domain.EmotionCategories{Stress: 40, Sarcasm: 40, Positivity: 40},
			dominant:   domain.EmotionStress,
			confidence: 40,
		},
		{
			name:       "Sarcasm wins a tie with positivity",
			categories: domain.EmotionCategories{Sarcasm: 50, Positivity: 50},
			dominant:   domain.EmotionSarcasm,
			confidence: 50,
		},
		{
			name:       "Highest wins",
			categories: domain.EmotionCategories{Aggression: 30, Sarcasm: 70, Positivity: 30},
			dominant:   domain.EmotionSarcasm,
			confidence: 70,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.Finalize(tt.categories)
			req.Equal(tt.dominant, v.Dominant, tt.name)
			req.Equal(tt.confidence, v.Confidence, tt.name)
		})
	}
}

func TestFinalize_Severity(t *testing.T) {
	req := require.New(t)
	e := NewEngine(DefaultThresholds())

	tests := []struct {
		name       string
		categories domain.EmotionCategories
		severity   domain.Severity
	}{
		{name: "Nothing", severity: domain.SeverityLow},
		{name: "Aggression above 80", categories: domain.EmotionCategories{Aggression: 81}, severity: domain.SeverityCritical},
		{name: "Toxicity above 85", categories: domain.EmotionCategories{Aggression: 80, Stress: 60}, severity: domain.SeverityCritical},
		{name: "Toxicity above 65", categories: domain.EmotionCategories{Aggression: 50, Stress: 70}, severity: domain.SeverityHigh},
		{name: "Sarcasm above 60", categories: domain.EmotionCategories{Sarcasm: 70}, severity: domain.SeverityHigh},
		{name: "Stress above 35", categories: domain.EmotionCategories{Stress: 40}, severity: domain.SeverityMedium},
		{name: "Positivity alone stays low", categories: domain.EmotionCategories{Positivity: 100}, severity: domain.SeverityLow},
		{name: "Exactly 35 stays low", categories: domain.EmotionCategories{Stress: 35}, severity: domain.SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.severity, e.Finalize(tt.categories).Severity, tt.name)
		})
	}
}

func FuzzFinalize_Bounded(f *testing.F) {
	e := NewEngine(DefaultThresholds())
	f.Add(0.0, 0.0, 0.0, 0.0)
	f.Add(500.0, -20.0, 33.3, 1e9)
	f.Add(math.Inf(1), math.Inf(-1), 12.5, 99.9)
	f.Fuzz(func(t *testing.T, a, s, sc, p float64) {
		v := e.Finalize(domain.EmotionCategories{Aggression: a, Stress: s, Sarcasm: sc, Positivity: p})
		c := v.Categories
		for _, x := range []float64{c.Aggression, c.Stress, c.Sarcasm, c.Toxicity, c.Positivity, v.Confidence} {
			if x < 0 || x > 100 || math.IsNaN(x) {
				t.Fatalf("out of bounds: %+v", v)
			}
		}
		if want := math.Min(100, c.Aggression*0.8+c.Stress*0.4); math.Abs(want-c.Toxicity) > 1e-9 {
			t.Fatalf("toxicity %v, want %v", c.Toxicity, want)
		}
	})
}
