// Package language picks the keyword table used for a message.
package language

import (
	"emotion-lab/domain"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

var guessOptions = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Rus: true,
		whatlanggo.Eng: true,
	},
}

// Detect returns ru when Cyrillic letters outnumber Latin ones, en otherwise.
// Text without letters of either script is ru.
func Detect(text string) domain.Language {
	var cyrillic, latin int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r):
			cyrillic++
		case unicode.Is(unicode.Latin, r) && unicode.IsLetter(r):
			latin++
		}
	}
	if cyrillic == 0 && latin == 0 {
		return domain.LangRU
	}
	if cyrillic > latin {
		return domain.LangRU
	}
	return domain.LangEN
}

// Guess runs the statistical detector restricted to Russian and English.
// It is informational only and never selects a keyword table.
func Guess(text string) (string, float64) {
	if text == "" {
		return "", 0
	}
	info := whatlanggo.DetectWithOptions(text, guessOptions)
	return info.Lang.Iso6391(), info.Confidence
}
