package normalize

import (
	"emotion-lab/lexicon"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Slang(t *testing.T) {
	req := require.New(t)
	n := New(lexicon.Default())

	// Given a message made of one IT slang term
	res := n.Normalize("кодить")

	// Then the canonical form replaces it and the substitution is recorded
	req.Contains(res.Text, "программировать")
	req.Contains(res.SlangDetected, "кодить (IT)")
	req.Empty(res.ErrorsFixed)
}

func TestNormalize_Passes(t *testing.T) {
	req := require.New(t)
	n := New(lexicon.Default())

	tests := []struct {
		name      string
		input     string
		text      string
		corrected string
		slang     []string
		fixed     []string
	}{
		{
			name:      "Whitespace is collapsed",
			input:     "  привет \t\n  мир  ",
			text:      "привет мир",
			corrected: "привет мир",
			slang:     []string{},
			fixed:     []string{},
		},
		{
			name:      "Emoji becomes a mood token",
			input:     "опять😡",
			text:      "опять angry",
			corrected: "опять angry",
			slang:     []string{},
			fixed:     []string{},
		},
		{
			name:      "Unknown emoji passes through",
			input:     "готово 👍",
			text:      "готово 👍",
			corrected: "готово 👍",
			slang:     []string{},
			fixed:     []string{},
		},
		{
			name:      "Typo keeps the capital",
			input:     "Превет всем",
			text:      "привет всем",
			corrected: "Привет всем",
			slang:     []string{},
			fixed:     []string{"превет → привет"},
		},
		{
			name:      "Typo is whole word only",
			input:     "превето",
			text:      "превето",
			corrected: "превето",
			slang:     []string{},
			fixed:     []string{},
		},
		{
			name:      "Slang is case insensitive",
			input:     "Спс, ОК",
			text:      "спасибо, хорошо",
			corrected: "Спс, ОК",
			slang:     []string{"ок (general)", "спс (general)"},
			fixed:     []string{},
		},
		{
			name:      "Phrase wins over its first word",
			input:     "ужас как бесит",
			text:      "очень сильно раздражает",
			corrected: "ужас как бесит",
			slang:     []string{"ужас как (emotional)", "бесит (emotional)"},
			fixed:     []string{},
		},
		{
			name:      "Each entry is recorded once",
			input:     "ок ок ок",
			text:      "хорошо хорошо хорошо",
			corrected: "ок ок ок",
			slang:     []string{"ок (general)"},
			fixed:     []string{},
		},
		{
			name:      "English slang",
			input:     "thx u rock",
			text:      "thanks you rock",
			corrected: "thx u rock",
			slang:     []string{"thx (general)", "u (general)"},
			fixed:     []string{},
		},
		{
			name:      "Empty",
			input:     "   ",
			text:      "",
			corrected: "",
			slang:     []string{},
			fixed:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := n.Normalize(tt.input)
			req.Equal(tt.text, res.Text, tt.name)
			req.Equal(tt.corrected, res.Corrected, tt.name)
			req.Equal(tt.slang, res.SlangDetected, tt.name)
			req.Equal(tt.fixed, res.ErrorsFixed, tt.name)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	req := require.New(t)
	n := New(lexicon.Default())

	inputs := []string{
		"кодить",
		"Превет!  Щас задеплоить не могу, прод лагает 😡",
		"ужас как бесит этот дедлайн... канеш 🙄",
		"thx, lgtm, ur PR is fine btw",
		"ВСЕ ГОРИТ!!!",
		"ок ок ок",
	}
	for _, input := range inputs {
		once := n.Normalize(input).Text
		twice := n.Normalize(once)
		req.Equal(once, twice.Text, input)
		req.Empty(twice.ErrorsFixed, input)
	}
}

func FuzzNormalize_Idempotent(f *testing.F) {
	n := New(lexicon.Default())
	for _, seed := range []string{"", "кодить", "ок спс", "😡😂 ок", "teh wierd u", "ну да-да..."} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		once := n.Normalize(input).Text
		if strings.Contains(once, "  ") {
			t.Fatalf("double space in %q", once)
		}
		if twice := n.Normalize(once).Text; twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
	})
}
