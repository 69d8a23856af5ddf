package features

import (
	"emotion-lab/domain"
	"emotion-lab/lexicon"
	"emotion-lab/normalize"
	"testing"

	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) (*Extractor, *normalize.Normalizer) {
	t.Helper()
	ex, err := NewExtractor(lexicon.Default(), DefaultWeights())
	require.NoError(t, err)
	return ex, normalize.New(lexicon.Default())
}

func extract(ex *Extractor, n *normalize.Normalizer, raw string, lang domain.Language) Features {
	return ex.Extract(raw, n.Normalize(raw).Text, lang)
}

func TestExtract_Keywords(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	// Given two long aggressive keywords
	f := extract(ex, n, "ты дурак идиот", domain.LangRU)

	// Then each weighs the long aggression weight
	req.Equal([]string{"дурак", "идиот"}, f.AggressionWords)
	req.Equal(80.0, f.Keywords.Aggression)
	req.Zero(f.Keywords.Stress)

	// Short keywords weigh less
	f = extract(ex, n, "урод ужас", domain.LangRU)
	req.Equal(30.0, f.Keywords.Aggression)
	req.Equal(30.0, f.Keywords.Stress)

	// Repeated keywords count once
	f = extract(ex, n, "бред бред бред", domain.LangRU)
	req.Equal(30.0, f.Keywords.Aggression)
}

func TestExtract_KeywordsFromNormalizedText(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	// Given slang whose canonical form is a positive keyword
	f := extract(ex, n, "спс", domain.LangRU)

	// Then the canonical form is scored
	req.Equal([]string{"спасибо"}, f.PositiveWords)
	req.Equal(30.0, f.Keywords.Positivity)
}

func TestExtract_KeywordTableFollowsLanguage(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	f := extract(ex, n, "you are stupid", domain.LangEN)
	req.Equal([]string{"stupid"}, f.AggressionWords)
	req.Equal(40.0, f.Keywords.Aggression)

	f = extract(ex, n, "you are stupid", domain.LangRU)
	req.Empty(f.AggressionWords)
}

func TestExtract_Punctuation(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	tests := []struct {
		name       string
		input      string
		stress     float64
		aggression float64
	}{
		{name: "Single exclamation", input: "привет!", stress: 0, aggression: 0},
		{name: "Three exclamations", input: "привет! ! !", stress: 30, aggression: 15},
		{name: "Shouting", input: "ПРИВЕТ ВСЕМ", stress: 0, aggression: 25},
		{name: "Short shouting is ignored", input: "ОК", stress: 0, aggression: 0},
		{name: "Mixed case", input: "Привет Всем", stress: 0, aggression: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extract(ex, n, tt.input, domain.LangRU)
			req.Equal(tt.stress, f.Punctuation.Stress, tt.name)
			req.Equal(tt.aggression, f.Punctuation.Aggression, tt.name)
		})
	}
}

func TestExtract_EmojiFromRawText(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	// Given emoji that the normalizer turns into mood tokens
	f := extract(ex, n, "😡 😡 🙄 👍", domain.LangRU)

	// Then they are still counted once each from the raw text
	req.Equal(30.0, f.Emoji.Aggression)
	req.Equal(40.0, f.Emoji.Sarcasm)
	req.Equal(25.0, f.Emoji.Positivity)
	req.Len(f.MatchedEmoji, 3)
}

func TestExtract_Sarcasm(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	// Hedging without an ellipsis is not sarcasm
	f := extract(ex, n, "конечно, сделаю", domain.LangRU)
	req.Zero(f.Sarcasm.Sarcasm)

	// Ellipsis plus hedging is
	f = extract(ex, n, "конечно, сделаю...", domain.LangRU)
	req.True(f.HasEllipsis)
	req.Equal(30.0, f.Sarcasm.Sarcasm)

	// Unicode ellipsis and slang hedge found through normalization
	f = extract(ex, n, "канеш… ага", domain.LangRU)
	req.ElementsMatch([]string{"ага", "конечно"}, f.HedgePhrases)
	req.Equal(60.0, f.Sarcasm.Sarcasm)

	f = extract(ex, n, "oh sure... great idea", domain.LangEN)
	req.Equal(30.0, f.Sarcasm.Sarcasm)
}

func TestExtract_Repetition(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	f := extract(ex, n, "нууу", domain.LangRU)
	req.Equal(3, f.LongestRun)
	req.Equal(10.0, f.Repetition.Stress)

	f = extract(ex, n, "нуу", domain.LangRU)
	req.Zero(f.Repetition.Stress)

	// Spaces do not form runes of a run
	f = extract(ex, n, "а   а", domain.LangRU)
	req.Zero(f.Repetition.Stress)
}

func TestExtract_NeverNegative(t *testing.T) {
	req := require.New(t)
	ex, n := newExtractor(t)

	for _, input := range []string{"", "   ", "🙂", "a", "!!!!!!!!!!", "ДА ДА ДА..."} {
		total := extract(ex, n, input, domain.LangRU).Total()
		req.GreaterOrEqual(total.Aggression, 0.0)
		req.GreaterOrEqual(total.Stress, 0.0)
		req.GreaterOrEqual(total.Sarcasm, 0.0)
		req.GreaterOrEqual(total.Positivity, 0.0)
	}
}

func TestNewExtractor_RejectsNegativeWeights(t *testing.T) {
	req := require.New(t)
	w := DefaultWeights()
	w.StressLong = -1
	_, err := NewExtractor(lexicon.Default(), w)
	req.Error(err)
}
