package domain

// LocalModel is the name reported in AnalysisResult.ModelUsed for the rule engine.
const LocalModel = "local-rules"

// AnalysisResult is the structured emotional/toxicity profile of one message.
// It is created per message and never mutated afterwards.
type AnalysisResult struct {
	OriginalText     string            `json:"original_text"`
	NormalizedText   string            `json:"normalized_text"`
	CorrectedText    string            `json:"corrected_text"`
	DetectedLanguage Language          `json:"detected_language"`
	SlangDetected    []string          `json:"slang_detected"`
	ErrorsFixed      []string          `json:"errors_fixed"`
	DominantEmotion  Emotion           `json:"dominant_emotion"`
	Confidence       float64           `json:"confidence"`
	Categories       EmotionCategories `json:"categories"`
	Severity         Severity          `json:"severity"`
	ModelUsed        []string          `json:"model_used"`
}

// NeutralResult is the all-zero result returned for empty or whitespace-only text.
func NeutralResult(text string) AnalysisResult {
	return AnalysisResult{
		OriginalText:     text,
		DetectedLanguage: LangRU,
		SlangDetected:    []string{},
		ErrorsFixed:      []string{},
		DominantEmotion:  EmotionNeutral,
		Severity:         SeverityLow,
		ModelUsed:        []string{LocalModel},
	}
}

// PartialCategories carries the categories an external classifier chose to report.
// Nil fields are absent.
type PartialCategories struct {
	Aggression *float64 `json:"aggression,omitempty" validate:"omitempty,gte=0,lte=100"`
	Stress     *float64 `json:"stress,omitempty" validate:"omitempty,gte=0,lte=100"`
	Sarcasm    *float64 `json:"sarcasm,omitempty" validate:"omitempty,gte=0,lte=100"`
	Toxicity   *float64 `json:"toxicity,omitempty" validate:"omitempty,gte=0,lte=100"`
	Positivity *float64 `json:"positivity,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// IsEmpty reports whether no category is present.
func (p PartialCategories) IsEmpty() bool {
	return p.Aggression == nil && p.Stress == nil && p.Sarcasm == nil &&
		p.Toxicity == nil && p.Positivity == nil
}

// RemoteResult is the optional output of an external classifier:
// a provisional emotion label plus per-category scores on a 0-100 scale.
type RemoteResult struct {
	Model      string            `json:"model"`
	Emotion    string            `json:"emotion" validate:"max=64"`
	Confidence float64           `json:"confidence" validate:"gte=0,lte=100"`
	Categories PartialCategories `json:"categories"`
}
