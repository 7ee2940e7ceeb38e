package domain

// Leaning is a political-leaning label used for both readers and sources
type Leaning string

// leaning labels, ordered from one pole of the spectrum to the other
const (
	LeaningLeft        Leaning = "left"
	LeaningCentreLeft  Leaning = "centre-left"
	LeaningCentre      Leaning = "centre"
	LeaningCentreRight Leaning = "centre-right"
	LeaningRight       Leaning = "right"
)

// Spectrum is the ordered leaning spectrum
var Spectrum = []Leaning{LeaningLeft, LeaningCentreLeft, LeaningCentre, LeaningCentreRight, LeaningRight}

// Valid reports whether the leaning is on the spectrum
func (l Leaning) Valid() bool {
	for _, s := range Spectrum {
		if s == l {
			return true
		}
	}
	return false
}

// Source represents a single news outlet feed
type Source struct {
	Name    string  `yaml:"name" json:"name"`
	URL     string  `yaml:"url" json:"url"`
	Leaning Leaning `yaml:"leaning" json:"leaning"`
}

// CategoryPreference is a reader's weighting of one category
type CategoryPreference struct {
	Category string `json:"category"`
	Weight   int    `json:"weight"` // 1..10
	Enabled  bool   `json:"enabled"`
}

// DefaultCategories used for new profiles and anonymous readers
func DefaultCategories() []CategoryPreference {
	return []CategoryPreference{
		{Category: "national", Weight: 8, Enabled: true},
		{Category: "international", Weight: 8, Enabled: true},
		{Category: "sport", Weight: 5, Enabled: true},
		{Category: "economy", Weight: 6, Enabled: true},
		{Category: "technology", Weight: 5, Enabled: true},
		{Category: "opinion", Weight: 4, Enabled: true},
		{Category: "science", Weight: 5, Enabled: true},
	}
}
