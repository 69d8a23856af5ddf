// Package features derives the numeric signals scored by the aggregation
// engine from the raw and the normalized text of a message.
package features

import (
	"emotion-lab/domain"
	"emotion-lab/lexicon"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Signals are per-category contributions. They are never negative.
type Signals struct {
	Aggression float64
	Stress     float64
	Sarcasm    float64
	Positivity float64
}

func (s Signals) Add(o Signals) Signals {
	return Signals{
		Aggression: s.Aggression + o.Aggression,
		Stress:     s.Stress + o.Stress,
		Sarcasm:    s.Sarcasm + o.Sarcasm,
		Positivity: s.Positivity + o.Positivity,
	}
}

// Features holds every signal source separately plus what produced it.
type Features struct {
	Keywords    Signals
	Punctuation Signals
	Emoji       Signals
	Sarcasm     Signals
	Repetition  Signals

	AggressionWords []string
	StressWords     []string
	PositiveWords   []string
	HedgePhrases    []string
	MatchedEmoji    []string
	Exclamations    int
	CapsRatio       float64
	HasEllipsis     bool
	LongestRun      int
}

// Total sums every signal source.
func (f Features) Total() Signals {
	return f.Keywords.Add(f.Punctuation).Add(f.Emoji).Add(f.Sarcasm).Add(f.Repetition)
}

type Extractor struct {
	store   *lexicon.Store
	weights Weights
}

func NewExtractor(store *lexicon.Store, weights Weights) (*Extractor, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("features: invalid weights: %w", err)
	}
	return &Extractor{store: store, weights: weights}, nil
}

// Extract computes the features of a message. Keywords and hedging phrases
// are looked up in both texts and count once each; punctuation, emoji and
// repetition are read from the raw text.
func (e *Extractor) Extract(raw, normalized string, lang domain.Language) Features {
	var f Features
	set := e.store.Keywords(lang)

	f.AggressionWords, f.Keywords.Aggression = e.keywordHits(set.Aggression, raw, normalized, e.weights.AggressionLong, e.weights.AggressionShort)
	f.StressWords, f.Keywords.Stress = e.keywordHits(set.Stress, raw, normalized, e.weights.StressLong, e.weights.StressShort)
	f.PositiveWords, f.Keywords.Positivity = e.keywordHits(set.Positivity, raw, normalized, e.weights.PositivityLong, e.weights.PositivityShort)

	e.punctuation(raw, &f)
	e.emoji(raw, &f)
	e.sarcasm(set.Hedges, raw, normalized, &f)
	e.repetition(raw, &f)
	return f
}

func (e *Extractor) keywordHits(m *lexicon.Matcher, raw, normalized string, long, short float64) ([]string, float64) {
	hits := union(m.Find(raw), m.Find(normalized))
	var score float64
	for _, kw := range hits {
		if kw.Len() > e.weights.LongKeywordRunes {
			score += long
		} else {
			score += short
		}
	}
	return lo.Map(hits, func(k lexicon.Keyword, _ int) string { return k.Text }), score
}

func (e *Extractor) punctuation(raw string, f *Features) {
	f.Exclamations = strings.Count(raw, "!")
	if f.Exclamations > 1 {
		extra := float64(f.Exclamations-1) * e.weights.ExclamationStress
		f.Punctuation.Stress += extra
		f.Punctuation.Aggression += extra * e.weights.ExclamationAggressionRatio
	}

	length, upper := 0, 0
	for _, r := range raw {
		length++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if length > 0 {
		f.CapsRatio = float64(upper) / float64(length)
	}
	if length > e.weights.CapsMinLength && f.CapsRatio > e.weights.CapsRatio {
		f.Punctuation.Aggression += e.weights.CapsAggression
	}
}

func (e *Extractor) emoji(raw string, f *Features) {
	buckets := e.store.Emoji()
	count := func(list []string, weight float64) float64 {
		var score float64
		for _, em := range list {
			if strings.Contains(raw, em) && !lo.Contains(f.MatchedEmoji, em) {
				f.MatchedEmoji = append(f.MatchedEmoji, em)
				score += weight
			}
		}
		return score
	}
	f.Emoji.Aggression = count(buckets.Aggressive, e.weights.EmojiAggressive)
	f.Emoji.Stress = count(buckets.Stressed, e.weights.EmojiStressed)
	f.Emoji.Positivity = count(buckets.Positive, e.weights.EmojiPositive)
	f.Emoji.Sarcasm = count(buckets.Sarcastic, e.weights.EmojiSarcastic)
}

func (e *Extractor) sarcasm(hedges *lexicon.Matcher, raw, normalized string, f *Features) {
	f.HasEllipsis = strings.Contains(raw, "...") || strings.Contains(raw, "…")
	if !f.HasEllipsis {
		return
	}
	phrases := union(hedges.Find(raw), hedges.Find(normalized))
	f.HedgePhrases = lo.Map(phrases, func(k lexicon.Keyword, _ int) string { return k.Text })
	f.Sarcasm.Sarcasm = float64(len(phrases)) * e.weights.SarcasmPhrase
}

// repetition finds the longest run of one non-space rune. Go regexps have no
// backreferences, so the (.)\1{2,} check is a scan.
func (e *Extractor) repetition(raw string, f *Features) {
	var prev rune
	run := 0
	for _, r := range raw {
		if unicode.IsSpace(r) {
			run = 0
			prev = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		f.LongestRun = max(f.LongestRun, run)
	}
	if f.LongestRun >= e.weights.RepetitionRun {
		f.Repetition.Stress = e.weights.RepetitionStress
	}
}

// union keeps the order of a, then the keywords of b not already in a.
func union(a, b []lexicon.Keyword) []lexicon.Keyword {
	out := append([]lexicon.Keyword{}, a...)
	for _, kw := range b {
		if !lo.ContainsBy(out, func(k lexicon.Keyword) bool { return k.Text == kw.Text }) {
			out = append(out, kw)
		}
	}
	return out
}
