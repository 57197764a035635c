// Package model defines the core data types shared across the import pipeline.
package model

import "strings"

// ParseMode identifies which parser produced a Recipe.
type ParseMode string

const (
	// ParseModeStructured means the recipe was extracted via the canonical
	// header vocabulary.
	ParseModeStructured ParseMode = "structured"
	// ParseModeFallback means header recognition failed and the recipe was
	// reconstructed from positional heuristics.
	ParseModeFallback ParseMode = "fallback"
)

// RecipeBlock is a contiguous raw-text span believed to hold one recipe.
// Blocks are produced by the segmenter and consumed by the parsers; they are
// never mutated.
type RecipeBlock struct {
	Lines     []string
	StartLine int // 1-based line number in the source file
}

// IsEmpty reports whether the block contains no non-blank lines.
func (b RecipeBlock) IsEmpty() bool {
	for _, line := range b.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// Recipe is the normalized record produced by the parsers.
//
// Title is always present (possibly empty, which the analyzer flags as a
// defect). List fields are always non-nil so downstream code never has to
// null-check; absence is an empty slice.
type Recipe struct {
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Subcategory string    `json:"subcategory,omitempty"`
	Servings    string    `json:"servings,omitempty"`
	Time        string    `json:"time,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Images      []string  `json:"images"`
	ParseMode   ParseMode `json:"parse_mode"`

	// Routing annotations, filled by the router. The parsed Title is never
	// rewritten; DisplayTitle carries the optional subcategory prefix.
	Section      string `json:"section,omitempty"`
	DisplayTitle string `json:"display_title,omitempty"`
}

// NewRecipe returns a Recipe with all list fields initialized.
func NewRecipe(mode ParseMode) Recipe {
	return Recipe{
		Ingredients: []string{},
		Steps:       []string{},
		Images:      []string{},
		ParseMode:   mode,
	}
}

// EffectiveTitle returns the display title when the router has set one, and
// the parsed title otherwise.
func (r Recipe) EffectiveTitle() string {
	if r.DisplayTitle != "" {
		return r.DisplayTitle
	}
	return r.Title
}
