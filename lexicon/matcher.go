package lexicon

import (
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

const stemMarker = "*"

// Keyword is one entry of a keyword table.
type Keyword struct {
	Text string
	Stem bool
}

// Len returns the keyword length in runes, the stem marker excluded.
func (k Keyword) Len() int {
	return len([]rune(k.Text))
}

// Matcher finds keywords in lowercased text with a single Aho-Corasick pass.
// It is immutable once built and safe for concurrent use.
type Matcher struct {
	machine  *goahocorasick.Machine
	keywords map[string]Keyword
	order    map[string]int
}

// NewMatcher builds the automaton for the given table entries.
func NewMatcher(entries []string) (*Matcher, error) {
	m := &Matcher{
		keywords: make(map[string]Keyword, len(entries)),
		order:    make(map[string]int, len(entries)),
	}
	for i, entry := range entries {
		kw := parseKeyword(entry)
		if kw.Text == "" {
			continue
		}
		if _, exists := m.keywords[kw.Text]; exists {
			continue
		}
		m.keywords[kw.Text] = kw
		m.order[kw.Text] = i
	}
	if len(m.keywords) == 0 {
		return m, nil
	}

	texts := lo.Keys(m.keywords)
	sort.Strings(texts)
	patterns := lo.Map(texts, func(t string, _ int) []rune { return []rune(t) })

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.machine = machine
	return m, nil
}

func parseKeyword(entry string) Keyword {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if strings.HasSuffix(entry, stemMarker) {
		return Keyword{Text: strings.TrimSuffix(entry, stemMarker), Stem: true}
	}
	return Keyword{Text: entry}
}

// Find returns the distinct keywords present in text, in table order.
// A match must start on a word boundary; whole-word keywords must also end on one.
func (m *Matcher) Find(text string) []Keyword {
	if m == nil || m.machine == nil || text == "" {
		return nil
	}
	runes := LowerRunes(text)
	seen := make(map[string]struct{})
	for _, term := range m.machine.MultiPatternSearch(runes, false) {
		word := string(term.Word)
		kw, ok := m.keywords[word]
		if !ok {
			continue
		}
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(runes) {
			continue
		}
		if start > 0 && IsWordRune(runes[start-1]) {
			continue
		}
		if !kw.Stem && end < len(runes) && IsWordRune(runes[end]) {
			continue
		}
		seen[word] = struct{}{}
	}

	found := lo.Map(lo.Keys(seen), func(w string, _ int) Keyword { return m.keywords[w] })
	sort.Slice(found, func(i, j int) bool {
		return m.order[found[i].Text] < m.order[found[j].Text]
	})
	return found
}

// Entries returns the table entries in table order, stems with their marker.
func (m *Matcher) Entries() []string {
	if m == nil {
		return nil
	}
	keywords := lo.Values(m.keywords)
	sort.Slice(keywords, func(i, j int) bool {
		return m.order[keywords[i].Text] < m.order[keywords[j].Text]
	})
	return lo.Map(keywords, func(k Keyword, _ int) string {
		if k.Stem {
			return k.Text + stemMarker
		}
		return k.Text
	})
}

// IsWordRune reports whether r belongs to a word for boundary checks.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// LowerRunes lowercases rune by rune so indexes line up with the input runes.
func LowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
