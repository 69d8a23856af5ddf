// Package lexicon holds the static tables of the scoring pipeline: slang and
// typo mappings, keyword lists per language, hedging phrases and emoji tables.
//
// A Store is built once and never mutated, so any number of analyses may
// read it concurrently.
package lexicon

import (
	"emotion-lab/domain"
	"emotion-lab/errors"
	"fmt"
	"strings"
	"sync"
)

// KeywordSet groups the matchers of one language.
type KeywordSet struct {
	Aggression *Matcher
	Stress     *Matcher
	Positivity *Matcher
	Hedges     *Matcher
}

// Tables is the raw material of a Store.
type Tables struct {
	Slang      map[domain.SlangCategory][][2]string
	Aggression map[domain.Language][]string
	Stress     map[domain.Language][]string
	Positivity map[domain.Language][]string
	Hedges     map[domain.Language][]string
	Emoji      EmojiBuckets
	Moods      []EmojiMood
}

// BuiltinTables returns the tables compiled into the binary.
func BuiltinTables() Tables {
	return Tables{
		Slang:      slangTables,
		Aggression: aggressionKeywords,
		Stress:     stressKeywords,
		Positivity: positivityKeywords,
		Hedges:     hedgingPhrases,
		Emoji:      emojiBuckets,
		Moods:      emojiMoods,
	}
}

type Store struct {
	entries  []domain.LexiconEntry
	typos    []domain.LexiconEntry
	keywords map[domain.Language]KeywordSet
	emoji    EmojiBuckets
	moods    []EmojiMood
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store built from the builtin tables.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := New(BuiltinTables())
		if err != nil {
			panic(fmt.Sprintf("lexicon: builtin tables are invalid: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// New validates the tables and builds the keyword automata.
func New(t Tables) (*Store, error) {
	s := &Store{
		keywords: make(map[domain.Language]KeywordSet, 2),
		emoji:    t.Emoji,
		moods:    t.Moods,
	}

	seen := make(map[string]domain.SlangCategory)
	for _, category := range domain.SlangCategories {
		for _, pair := range t.Slang[category] {
			surface := strings.ToLower(strings.TrimSpace(pair[0]))
			canonical := strings.ToLower(strings.TrimSpace(pair[1]))
			if surface == "" || canonical == "" {
				return nil, fmt.Errorf("%w: empty entry in %s", errors.ErrEmptyLexicon, category)
			}
			if previous, dup := seen[surface]; dup {
				return nil, fmt.Errorf("lexicon: %q declared in %s and %s", surface, previous, category)
			}
			seen[surface] = category
			entry := domain.LexiconEntry{SurfaceForm: surface, CanonicalForm: canonical, Category: category}
			s.entries = append(s.entries, entry)
			if category == domain.CategoryTypo {
				s.typos = append(s.typos, entry)
			}
		}
	}
	if len(s.entries) == 0 {
		return nil, errors.ErrEmptyLexicon
	}

	for _, lang := range []domain.Language{domain.LangRU, domain.LangEN} {
		set, err := buildKeywordSet(t, lang)
		if err != nil {
			return nil, fmt.Errorf("lexicon: %s keywords: %w", lang, err)
		}
		s.keywords[lang] = set
	}
	return s, nil
}

func buildKeywordSet(t Tables, lang domain.Language) (KeywordSet, error) {
	var set KeywordSet
	var err error
	if set.Aggression, err = NewMatcher(t.Aggression[lang]); err != nil {
		return set, err
	}
	if set.Stress, err = NewMatcher(t.Stress[lang]); err != nil {
		return set, err
	}
	if set.Positivity, err = NewMatcher(t.Positivity[lang]); err != nil {
		return set, err
	}
	if set.Hedges, err = NewMatcher(t.Hedges[lang]); err != nil {
		return set, err
	}
	return set, nil
}

// Entries returns every slang entry in scan order. Callers must not modify it.
func (s *Store) Entries() []domain.LexiconEntry {
	return s.entries
}

// Typos returns the typo category entries. Callers must not modify it.
func (s *Store) Typos() []domain.LexiconEntry {
	return s.typos
}

// Keywords returns the keyword matchers of the language, falling back to Russian.
func (s *Store) Keywords(lang domain.Language) KeywordSet {
	if set, ok := s.keywords[lang]; ok {
		return set
	}
	return s.keywords[domain.LangRU]
}

func (s *Store) Emoji() EmojiBuckets {
	return s.emoji
}

func (s *Store) Moods() []EmojiMood {
	return s.moods
}
