// Package normalize rewrites a chat message into the canonical form scored by
// the feature extractor and records every substitution made on the way.
package normalize

import (
	"emotion-lab/domain"
	"emotion-lab/lexicon"
	"strings"
	"unicode"
)

// Result is the output of the normalization passes.
type Result struct {
	// Text is the fully normalized, lowercased text.
	Text string
	// Corrected is the text after the typo pass, before slang canonicalization.
	Corrected     string
	SlangDetected []string
	ErrorsFixed   []string
}

// Normalizer is stateless apart from the shared lexicon store.
type Normalizer struct {
	store *lexicon.Store
}

func New(store *lexicon.Store) *Normalizer {
	return &Normalizer{store: store}
}

// Normalize applies, in order: whitespace collapse, emoji substitution,
// typo correction and slang canonicalization.
func (n *Normalizer) Normalize(text string) Result {
	res := Result{SlangDetected: []string{}, ErrorsFixed: []string{}}

	text = CollapseSpaces(text)
	text = n.substituteEmoji(text)

	text, res.ErrorsFixed = n.fixTypos(text)
	res.Corrected = text

	res.Text, res.SlangDetected = n.canonicalize(text)
	return res
}

// CollapseSpaces trims the text and collapses whitespace runs to one space.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func (n *Normalizer) substituteEmoji(text string) string {
	replaced := false
	for _, mood := range n.store.Moods() {
		if strings.Contains(text, mood.Emoji) {
			text = strings.ReplaceAll(text, mood.Emoji, " "+mood.Token+" ")
			replaced = true
		}
	}
	if !replaced {
		return text
	}
	return CollapseSpaces(text)
}

// fixTypos keeps the case of the surrounding text; a corrected word starting
// with an uppercase letter keeps its capital.
func (n *Normalizer) fixTypos(text string) (string, []string) {
	fixed := []string{}
	runes := []rune(text)
	for _, entry := range n.store.Typos() {
		var count int
		runes, _, count = replaceWholeWords(runes, nil, entry, true)
		if count > 0 {
			fixed = append(fixed, entry.Fixed())
		}
	}
	return string(runes), fixed
}

// canonicalize lowercases the text and rewrites slang. Runes produced by an
// earlier entry are locked so the first match wins for a given span.
func (n *Normalizer) canonicalize(text string) (string, []string) {
	detected := []string{}
	runes := lexicon.LowerRunes(text)
	locked := make([]bool, len(runes))
	for _, entry := range n.store.Entries() {
		var count int
		runes, locked, count = replaceWholeWords(runes, locked, entry, false)
		if count > 0 {
			detected = append(detected, entry.Detected())
		}
	}
	return string(runes), detected
}

// replaceWholeWords replaces every case-insensitive whole-word occurrence of
// the entry surface form that does not overlap a locked rune. When locked is
// not nil the replacement runes are locked in the returned mask.
func replaceWholeWords(runes []rune, locked []bool, entry domain.LexiconEntry, keepCapital bool) ([]rune, []bool, int) {
	surface := []rune(entry.SurfaceForm)
	canonical := []rune(entry.CanonicalForm)
	if len(surface) == 0 || len(surface) > len(runes) {
		return runes, locked, 0
	}

	var out []rune
	var outLocked []bool
	count := 0
	for i := 0; i < len(runes); {
		if matchAt(runes, locked, surface, i) {
			replacement := canonical
			if keepCapital && unicode.IsUpper(runes[i]) {
				replacement = capitalize(canonical)
			}
			if out == nil {
				out = make([]rune, 0, len(runes)+len(canonical))
				out = append(out, runes[:i]...)
				if locked != nil {
					outLocked = make([]bool, 0, cap(out))
					outLocked = append(outLocked, locked[:i]...)
				}
			}
			out = append(out, replacement...)
			if locked != nil {
				for range replacement {
					outLocked = append(outLocked, true)
				}
			}
			i += len(surface)
			count++
			continue
		}
		if out != nil {
			out = append(out, runes[i])
			if locked != nil {
				outLocked = append(outLocked, locked[i])
			}
		}
		i++
	}
	if count == 0 {
		return runes, locked, 0
	}
	return out, outLocked, count
}

func matchAt(runes []rune, locked []bool, surface []rune, i int) bool {
	end := i + len(surface)
	if end > len(runes) {
		return false
	}
	if i > 0 && lexicon.IsWordRune(runes[i-1]) {
		return false
	}
	if end < len(runes) && lexicon.IsWordRune(runes[end]) {
		return false
	}
	for k, r := range surface {
		if unicode.ToLower(runes[i+k]) != r {
			return false
		}
		if locked != nil && locked[i+k] {
			return false
		}
	}
	return true
}

func capitalize(runes []rune) []rune {
	out := make([]rune, len(runes))
	copy(out, runes)
	out[0] = unicode.ToUpper(out[0])
	return out
}
