package router

import (
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// Config controls category splitting and title decoration.
type Config struct {
	// Separator splits a category into main and sub parts. Defaults to "/".
	Separator string
	// DefaultSection receives recipes without any category.
	DefaultSection string
	// PrefixSubcategory prepends "[Sub] " to the display title when a
	// subcategory is present.
	PrefixSubcategory bool
}

func (c Config) separator() string {
	if c.Separator == "" {
		return "/"
	}
	return c.Separator
}

// Route annotates a recipe with its resolved destination section and
// effective display title. The parsed Title field is never mutated.
//
// Resolution precedence: exact "main<sep>sub" mapping match, then bare
// "main" match, then the main category verbatim. Lookup is case-insensitive;
// an identity fallback preserves the source's casing.
func Route(r model.Recipe, m Mapping, cfg Config) model.Recipe {
	sep := cfg.separator()

	main, sub := r.Category, r.Subcategory
	if sub == "" {
		main, sub = splitCategory(r.Category, sep)
	}
	r.Category, r.Subcategory = main, sub

	switch {
	case main == "":
		r.Section = cfg.DefaultSection
	default:
		fullKey := strings.ToLower(main + sep + sub)
		mainKey := strings.ToLower(main)
		if sub != "" && m[fullKey] != "" {
			r.Section = m[fullKey]
		} else if m[mainKey] != "" {
			r.Section = m[mainKey]
		} else {
			r.Section = main
		}
	}

	r.DisplayTitle = r.Title
	if cfg.PrefixSubcategory && sub != "" {
		r.DisplayTitle = "[" + sub + "] " + r.Title
	}

	return r
}

// splitCategory cuts a raw category string into main and sub parts on the
// first occurrence of the separator. Surrounding whitespace is dropped.
func splitCategory(category, sep string) (main, sub string) {
	main, sub, _ = strings.Cut(category, sep)
	return strings.TrimSpace(main), strings.TrimSpace(sub)
}
