package moderation

import (
	"emotion-lab/lexicon"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"badger", "snake", "mushroom", "дурак*"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name: "Leet speak and internal punctuation",
			// B (index 8) . 4 . d . g . € r (index 17) -> 10 characters
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			words:    []string{"snake", "badger"},
		},
		{
			name:     "Accents and special characters (UTF-8)",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "I love badger!",
			expected: "I love ******!",
			words:    []string{"badger"},
		},
		{
			name:     "Stem covers inflected Russian words",
			input:    "ты дурак, вы дураки",
			expected: "ты *****, вы *****и",
			words:    []string{"дурак", "дурак"},
		},
		{
			name:     "Whole word is not censored inside a longer word",
			input:    "snakes and badgers",
			expected: "snakes and badgers",
			words:    nil,
		},
		{
			name:     "Nothing to censor",
			input:    "Emotion-Lab is amazing",
			expected: "Emotion-Lab is amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "badger"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	input := "The badger is safe"
	expected := "The ****** is safe"
	content, words := mod.Censor(input)
	req.Equal(expected, content)
	req.Equal([]string{"badger"}, words)

	// Then real noise is uncensored
	input = "Hello ..."
	expected = "Hello ..."
	content, words = mod.Censor(input)
	req.Equal(expected, content)
	req.Nil(words)

	// Given only noise, nothing is ever censored
	empty, err := NewModerator([]string{"..."}, replacementChar, log)
	req.NoError(err)
	content, words = empty.Censor("badger")
	req.Equal("badger", content)
	req.Nil(words)
}

func TestNewFromLexicon(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given the builtin aggression vocabulary
	mod, err := NewFromLexicon(lexicon.Default(), []string{"жаба"}, replacementChar, log)
	req.NoError(err)

	// Then Russian and English insults are masked
	content, words := mod.Censor("ты идиот, shut up")
	req.Equal("ты *****, *******", content)
	req.Equal([]string{"идиот", "shutup"}, words)

	// And extra words are masked too
	content, words = mod.Censor("эта жаба опять")
	req.Equal("эта **** опять", content)
	req.Equal([]string{"жаба"}, words)

	// And an innocent sentence is untouched
	content, words = mod.Censor("спасибо, отличная работа")
	req.Equal("спасибо, отличная работа", content)
	req.Nil(words)
}
