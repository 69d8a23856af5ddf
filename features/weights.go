package features

import "github.com/go-playground/validator/v10"

// Weights are the tunable contributions of every signal. All of them are
// non-negative so no feature can lower a category.
type Weights struct {
	// Keywords longer than LongKeywordRunes use the long weight.
	LongKeywordRunes int     `validate:"gte=1"`
	AggressionLong   float64 `validate:"gte=0"`
	AggressionShort  float64 `validate:"gte=0"`
	StressLong       float64 `validate:"gte=0"`
	StressShort      float64 `validate:"gte=0"`
	PositivityLong   float64 `validate:"gte=0"`
	PositivityShort  float64 `validate:"gte=0"`

	// Every '!' beyond the first adds ExclamationStress to stress and
	// ExclamationAggressionRatio of it to aggression.
	ExclamationStress          float64 `validate:"gte=0"`
	ExclamationAggressionRatio float64 `validate:"gte=0,lte=1"`

	CapsRatio      float64 `validate:"gte=0,lte=1"`
	CapsMinLength  int     `validate:"gte=0"`
	CapsAggression float64 `validate:"gte=0"`

	EmojiAggressive float64 `validate:"gte=0"`
	EmojiStressed   float64 `validate:"gte=0"`
	EmojiPositive   float64 `validate:"gte=0"`
	EmojiSarcastic  float64 `validate:"gte=0"`

	// SarcasmPhrase is added per hedging phrase when the text has an ellipsis.
	SarcasmPhrase float64 `validate:"gte=0"`

	RepetitionRun    int     `validate:"gte=2"`
	RepetitionStress float64 `validate:"gte=0"`
}

func DefaultWeights() Weights {
	return Weights{
		LongKeywordRunes: 4,
		AggressionLong:   40,
		AggressionShort:  30,
		StressLong:       35,
		StressShort:      30,
		PositivityLong:   30,
		PositivityShort:  25,

		ExclamationStress:          15,
		ExclamationAggressionRatio: 0.5,

		CapsRatio:      0.3,
		CapsMinLength:  5,
		CapsAggression: 25,

		EmojiAggressive: 30,
		EmojiStressed:   25,
		EmojiPositive:   25,
		EmojiSarcastic:  40,

		SarcasmPhrase: 30,

		RepetitionRun:    3,
		RepetitionStress: 10,
	}
}

func (w Weights) Validate() error {
	return validator.New().Struct(w)
}
