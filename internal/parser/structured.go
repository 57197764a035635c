package parser

import (
	"regexp"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// field is the parser's current-capture state while scanning a block. Every
// recognized header switches the state; all other lines belong to the field
// that is currently open.
type field int

const (
	fieldNone field = iota
	fieldCategory
	fieldServings
	fieldTime
	fieldDifficulty
	fieldIngredients
	fieldSteps
	fieldImages
)

// Header vocabulary. Headers stand alone on their line, case-insensitive,
// trailing colon optional. Titel is special: it carries its value inline and
// is matched by titleLineRe.
var headerPatterns = []struct {
	re *regexp.Regexp
	f  field
}{
	{regexp.MustCompile(`(?i)^kategorie\s*:?\s*$`), fieldCategory},
	{regexp.MustCompile(`(?i)^(?:portionen|servieren)\s*:?\s*$`), fieldServings},
	{regexp.MustCompile(`(?i)^(?:zubereitungszeit|zeit|dauer)\s*:?\s*$`), fieldTime},
	{regexp.MustCompile(`(?i)^(?:schwierigkeitsgrad|schwierigkeit)\s*:?\s*$`), fieldDifficulty},
	{regexp.MustCompile(`(?i)^zutaten\s*:?\s*$`), fieldIngredients},
	{regexp.MustCompile(`(?i)^(?:zubereitung|anleitung)\s*:?\s*$`), fieldSteps},
	{regexp.MustCompile(`(?i)^(?:bilder|bild|fotos|foto|images|image)\s*:?\s*$`), fieldImages},
}

var (
	bulletMarkerRe  = regexp.MustCompile(`^\s*[-*\x{2022}]\s+`)
	ordinalMarkerRe = regexp.MustCompile(`^\s*\d+[.)]\s+`)
)

// stripListMarker removes a leading bullet or ordinal marker from a list
// entry. Step order always follows source order; a mismatched ordinal never
// reorders anything.
func stripListMarker(s string) string {
	s = bulletMarkerRe.ReplaceAllString(s, "")
	s = ordinalMarkerRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func matchHeader(line string) (field, bool) {
	for _, h := range headerPatterns {
		if h.re.MatchString(line) {
			return h.f, true
		}
	}
	return fieldNone, false
}

// ParseStructured extracts a Recipe from a block using the canonical header
// vocabulary. It reports ok=false when the block lacks sufficient structure:
// a recipe counts as structured only if at least one list section (Zutaten or
// Zubereitung) was recognized with content. The title comes from an explicit
// Titel header, or failing that from the first non-empty unassigned line.
func ParseStructured(block model.RecipeBlock) (model.Recipe, bool) {
	r := model.NewRecipe(model.ParseModeStructured)

	current := fieldNone
	titleFromHeader := false

	for _, raw := range block.Lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := titleLineRe.FindStringSubmatch(line); m != nil {
			r.Title = strings.TrimSpace(m[1])
			titleFromHeader = true
			current = fieldNone
			continue
		}

		if f, ok := matchHeader(line); ok {
			current = f
			continue
		}

		switch current {
		case fieldNone:
			// Content before any header: first such line is the title
			// candidate, the rest is ignored.
			if r.Title == "" && !titleFromHeader {
				r.Title = line
			}
		case fieldCategory:
			if r.Category == "" {
				r.Category = line
			}
		case fieldServings:
			if r.Servings == "" {
				r.Servings = line
			}
		case fieldTime:
			if r.Time == "" {
				r.Time = line
			}
		case fieldDifficulty:
			if r.Difficulty == "" {
				r.Difficulty = line
			}
		case fieldIngredients:
			r.Ingredients = append(r.Ingredients, stripListMarker(line))
		case fieldSteps:
			r.Steps = append(r.Steps, stripListMarker(line))
		case fieldImages:
			r.Images = append(r.Images, stripListMarker(line))
		}
	}

	if len(r.Ingredients) == 0 && len(r.Steps) == 0 {
		return model.Recipe{}, false
	}

	return r, true
}
