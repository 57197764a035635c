package parser

import (
	"regexp"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

var urlRe = regexp.MustCompile(`(?i)^https?://\S+$`)

// maxNounPhraseWords bounds the short-line heuristic: unmarked lines up to
// this many words are taken as ingredient candidates.
const maxNounPhraseWords = 6

// ParseFallback reconstructs a Recipe from a block the structured parser
// rejected. It never fails: the worst case is a recipe with only a title
// (possibly empty) and empty lists, which the analyzer then flags as low
// quality.
//
// Heuristics, in order: the first non-empty line becomes the title; bulleted
// lines become ingredients; numbered lines become steps; bare URLs become
// images. When that found list content but no ingredients, short unmarked
// noun-phrase lines before the first step are promoted to ingredients. When
// no markers were found at all, the first blank-line-separated chunk after
// the title is read as ingredients and the second as steps. Everything else
// is dropped.
func ParseFallback(block model.RecipeBlock) model.Recipe {
	r := model.NewRecipe(model.ParseModeFallback)

	rest := make([]string, 0, len(block.Lines))
	titleSeen := false
	for _, raw := range block.Lines {
		line := strings.TrimSpace(raw)
		if !titleSeen {
			if line == "" {
				continue
			}
			if m := titleLineRe.FindStringSubmatch(line); m != nil {
				r.Title = strings.TrimSpace(m[1])
			} else {
				r.Title = line
			}
			titleSeen = true
			continue
		}
		rest = append(rest, line)
	}

	firstStep := -1
	var unmarked []int
	for i, line := range rest {
		switch {
		case line == "":
		case bulletMarkerRe.MatchString(line):
			r.Ingredients = append(r.Ingredients, stripListMarker(line))
		case ordinalMarkerRe.MatchString(line):
			r.Steps = append(r.Steps, stripListMarker(line))
			if firstStep < 0 {
				firstStep = i
			}
		case urlRe.MatchString(line):
			r.Images = append(r.Images, line)
		default:
			unmarked = append(unmarked, i)
		}
	}

	switch {
	case len(r.Ingredients) == 0 && len(r.Steps) == 0:
		// No list markers anywhere: fall back to positional chunks, first
		// chunk after the title = ingredients, second = steps.
		chunks := splitChunks(rest, r.Images)
		if len(chunks) >= 1 {
			r.Ingredients = append(r.Ingredients, chunks[0]...)
		}
		if len(chunks) >= 2 {
			r.Steps = append(r.Steps, chunks[1]...)
		}
	case len(r.Ingredients) == 0:
		for _, i := range unmarked {
			if firstStep >= 0 && i > firstStep {
				break
			}
			if looksLikeIngredient(rest[i]) {
				r.Ingredients = append(r.Ingredients, rest[i])
			}
		}
	}

	return r
}

// looksLikeIngredient matches short noun-phrase lines such as "2 Eier" or
// "Salz und Pfeffer": few words, no sentence punctuation, no header colon.
func looksLikeIngredient(line string) bool {
	if strings.Contains(line, ":") || strings.HasSuffix(line, ".") {
		return false
	}
	return len(strings.Fields(line)) <= maxNounPhraseWords
}

// splitChunks groups consecutive non-blank lines, splitting at blank lines.
// Lines already claimed as images are skipped.
func splitChunks(lines []string, images []string) [][]string {
	claimed := make(map[string]bool, len(images))
	for _, img := range images {
		claimed[img] = true
	}

	var chunks [][]string
	var cur []string
	for _, line := range lines {
		if line == "" {
			if len(cur) > 0 {
				chunks = append(chunks, cur)
				cur = nil
			}
			continue
		}
		if claimed[line] {
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}
