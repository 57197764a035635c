package parser

import (
	"log/slog"

	"github.com/izebair/Rezepte/internal/model"
)

// Parse converts raw input text into an ordered sequence of recipes. Every
// segmented block yields exactly one Recipe: the structured parser runs
// first, and blocks it rejects go through the fallback parser, which never
// fails. Output order matches source order.
func Parse(text string) []model.Recipe {
	blocks := Segment(text)

	recipes := make([]model.Recipe, 0, len(blocks))
	for _, block := range blocks {
		r, ok := ParseStructured(block)
		if !ok {
			r = ParseFallback(block)
			slog.Debug("structured parse rejected block, used fallback",
				"start_line", block.StartLine,
				"title", r.Title)
		}
		recipes = append(recipes, r)
	}

	return recipes
}
