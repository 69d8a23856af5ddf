package domain

import "fmt"

// SlangCategory partitions the lexicon. The declaration order is the scan order.
type SlangCategory string

const (
	CategoryIT        SlangCategory = "IT"
	CategoryGeneral   SlangCategory = "general"
	CategoryCorporate SlangCategory = "corporate"
	CategoryEmotional SlangCategory = "emotional"
	CategoryTypo      SlangCategory = "typo"
)

// SlangCategories is the fixed lexicon iteration order.
var SlangCategories = []SlangCategory{
	CategoryIT, CategoryGeneral, CategoryCorporate, CategoryEmotional, CategoryTypo,
}

// LexiconEntry maps a nonstandard surface form to its canonical form.
type LexiconEntry struct {
	SurfaceForm   string
	CanonicalForm string
	Category      SlangCategory
}

// Detected is the slangDetected record, e.g. "кодить (IT)".
func (e LexiconEntry) Detected() string {
	return fmt.Sprintf("%s (%s)", e.SurfaceForm, e.Category)
}

// Fixed is the errorsFixed record, e.g. "превет → привет".
func (e LexiconEntry) Fixed() string {
	return fmt.Sprintf("%s → %s", e.SurfaceForm, e.CanonicalForm)
}
