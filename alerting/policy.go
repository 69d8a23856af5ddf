// Package alerting turns an analysis into actionable tiers and alerts for the
// moderation and notification collaborators.
package alerting

import "emotion-lab/domain"

// Rules are the alert thresholds on the 0-100 scale.
type Rules struct {
	// LowToxicity lifts a low severity message to TierLow.
	LowToxicity float64

	Toxicity         float64
	ToxicityHigh     float64
	Aggression       float64
	Stress           float64
	StressHigh       float64
	ConflictAggr     float64
	ConflictToxicity float64
}

func DefaultRules() Rules {
	return Rules{
		LowToxicity:      20,
		Toxicity:         70,
		ToxicityHigh:     90,
		Aggression:       80,
		Stress:           70,
		StressHigh:       90,
		ConflictAggr:     60,
		ConflictToxicity: 50,
	}
}

type Policy struct {
	rules Rules
}

func NewPolicy(rules Rules) *Policy {
	return &Policy{rules: rules}
}

// Tier maps the severity of a result to an actionable tier.
func (p *Policy) Tier(result domain.AnalysisResult) domain.AlertTier {
	switch result.Severity {
	case domain.SeverityCritical:
		return domain.TierCritical
	case domain.SeverityHigh:
		return domain.TierHigh
	case domain.SeverityMedium:
		return domain.TierMedium
	}
	if result.Categories.Toxicity >= p.rules.LowToxicity || result.DominantEmotion.IsNegative() {
		return domain.TierLow
	}
	return domain.TierNone
}

// Evaluate returns the alerts raised by a result, in a fixed order.
func (p *Policy) Evaluate(result domain.AnalysisResult) []domain.Alert {
	r := p.rules
	c := result.Categories
	var alerts []domain.Alert

	if c.Toxicity > r.Toxicity {
		alerts = append(alerts, domain.Alert{
			Type:  domain.AlertToxicity,
			Tier:  tierAbove(c.Toxicity, r.ToxicityHigh),
			Score: c.Toxicity,
		})
	}
	if c.Aggression > r.Aggression {
		alerts = append(alerts, domain.Alert{Type: domain.AlertAggression, Tier: domain.TierHigh, Score: c.Aggression})
	}
	if c.Stress > r.Stress {
		alerts = append(alerts, domain.Alert{
			Type:  domain.AlertStress,
			Tier:  tierAbove(c.Stress, r.StressHigh),
			Score: c.Stress,
		})
	}
	if c.Aggression > r.ConflictAggr && c.Toxicity > r.ConflictToxicity {
		alerts = append(alerts, domain.Alert{Type: domain.AlertConflict, Tier: domain.TierMedium, Score: c.Aggression})
	}
	return alerts
}

func tierAbove(score, high float64) domain.AlertTier {
	if score > high {
		return domain.TierHigh
	}
	return domain.TierMedium
}
