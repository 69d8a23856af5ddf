package domain

// AlertTier is the actionable bucket consumed by moderation and notification.
type AlertTier string

const (
	TierNone     AlertTier = "none"
	TierLow      AlertTier = "low"
	TierMedium   AlertTier = "medium"
	TierHigh     AlertTier = "high"
	TierCritical AlertTier = "critical"
)

type AlertType string

const (
	AlertToxicity   AlertType = "toxicity"
	AlertAggression AlertType = "aggression"
	AlertStress     AlertType = "stress"
	AlertConflict   AlertType = "conflict"
)

type Alert struct {
	Type  AlertType
	Tier  AlertTier
	Score float64
}
