package moderation

import (
	"emotion-lab/domain"
	"emotion-lab/lexicon"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator masks offensive vocabulary in the copy of a message that is
// stored and displayed. Scoring always reads the original text.
type Moderator struct {
	matcher      *goahocorasick.Machine
	stems        map[string]bool
	censoredChar rune
	log          *slog.Logger
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided censored words list.
// A word ending with '*' also matches longer words starting with it.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	stems := make(map[string]bool, len(censoredWords))
	for _, word := range censoredWords {
		stem := strings.HasSuffix(word, "*")
		pattern := string(normalizeRunes([]rune(strings.TrimSuffix(word, "*"))))
		if pattern == "" {
			continue
		}
		stems[pattern] = stems[pattern] || stem
	}
	if len(stems) == 0 {
		log.Debug("Moderator built without censored words")
		return &Moderator{stems: stems, censoredChar: censoredChar, log: log}, nil
	}

	words := lo.Keys(stems)
	sort.Strings(words)
	m := new(goahocorasick.Machine)
	if err := m.Build(lo.Map(words, func(w string, _ int) []rune { return []rune(w) })); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, stems: stems, censoredChar: censoredChar, log: log}, nil
}

// NewFromLexicon censors the aggression keywords of every language of the store
// plus the extra words, usually the operator blacklist.
func NewFromLexicon(store *lexicon.Store, extra []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	words := append([]string(nil), extra...)
	for _, lang := range []domain.Language{domain.LangRU, domain.LangEN} {
		words = append(words, store.Keywords(lang).Aggression.Entries()...)
	}
	return NewModerator(words, censoredChar, log)
}

// Censor identifies forbidden patterns and replaces the original characters with the censored char while preserving spacing.
// It returns the censored text and the matched words in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := m.normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Pos < spans[j].Pos })

	origRunes := []rune(original)
	var found []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1

		word := string(span.Word)
		if !m.onWordBoundary(origRunes, origStart, origEnd, m.stems[word]) {
			continue
		}

		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		found = append(found, word)
	}
	if len(found) > 0 {
		m.log.Debug("Censored message", "words", len(found))
	}
	return string(origRunes), found
}

// onWordBoundary rejects matches glued to letters of a longer word.
func (m *Moderator) onWordBoundary(runes []rune, start, end int, stem bool) bool {
	if start > 0 && unicode.IsLetter(runes[start-1]) {
		return false
	}
	if !stem && end < len(runes) && unicode.IsLetter(runes[end]) {
		return false
	}
	return true
}

// normalize transforms the input string into a searchable format and tracks original rune positions.
func (m *Moderator) normalize(input string) TextMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: norm, OrigIdx: origIdx}
}

// normalizeRunes applies simplification and noise removal to a slice of runes.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
