package analyzer

import (
	"emotion-lab/domain"
	"strings"

	"github.com/samber/lo"
)

// remoteLabels maps the labels of common emotion models to scored emotions.
var remoteLabels = map[string]domain.Emotion{
	"anger":      domain.EmotionAggression,
	"angry":      domain.EmotionAggression,
	"disgust":    domain.EmotionAggression,
	"frustrated": domain.EmotionAggression,
	"toxic":      domain.EmotionAggression,
	"insult":     domain.EmotionAggression,

	"fear":     domain.EmotionStress,
	"sadness":  domain.EmotionStress,
	"sad":      domain.EmotionStress,
	"shame":    domain.EmotionStress,
	"guilt":    domain.EmotionStress,
	"worried":  domain.EmotionStress,
	"stressed": domain.EmotionStress,

	"sarcasm": domain.EmotionSarcasm,
	"irony":   domain.EmotionSarcasm,

	"joy":       domain.EmotionPositivity,
	"love":      domain.EmotionPositivity,
	"happy":     domain.EmotionPositivity,
	"excited":   domain.EmotionPositivity,
	"confident": domain.EmotionPositivity,
	"positive":  domain.EmotionPositivity,
}

// LabelEmotion maps a remote label, case-insensitively, to a scored emotion.
// Unknown labels are neutral.
func LabelEmotion(label string) domain.Emotion {
	label = strings.ToLower(strings.TrimSpace(label))
	if e, ok := remoteLabels[label]; ok {
		return e
	}
	if lo.Contains(domain.Emotions, domain.Emotion(label)) {
		return domain.Emotion(label)
	}
	return domain.EmotionNeutral
}
