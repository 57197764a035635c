package parser

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(lines ...string) model.RecipeBlock {
	return model.RecipeBlock{Lines: lines, StartLine: 1}
}

func TestParseStructured_CanonicalHeaders(t *testing.T) {
	b := block(
		"Titel: Chili con Carne",
		"",
		"Kategorie:",
		"Mexikanisch",
		"",
		"Portionen:",
		"4",
		"",
		"Zeit:",
		"45 Minuten",
		"",
		"Schwierigkeit:",
		"mittel",
		"",
		"Zutaten:",
		"- 500g Hackfleisch",
		"- 1 Dose Bohnen",
		"",
		"Zubereitung:",
		"1. Anbraten",
		"2. Kochen",
		"",
		"Bilder:",
		"https://example.com/chili.jpg",
	)

	r, ok := ParseStructured(b)
	require.True(t, ok)

	assert.Equal(t, "Chili con Carne", r.Title)
	assert.Equal(t, "Mexikanisch", r.Category)
	assert.Equal(t, "4", r.Servings)
	assert.Equal(t, "45 Minuten", r.Time)
	assert.Equal(t, "mittel", r.Difficulty)
	assert.Equal(t, []string{"500g Hackfleisch", "1 Dose Bohnen"}, r.Ingredients)
	assert.Equal(t, []string{"Anbraten", "Kochen"}, r.Steps)
	assert.Equal(t, []string{"https://example.com/chili.jpg"}, r.Images)
	assert.Equal(t, model.ParseModeStructured, r.ParseMode)
}

func TestParseStructured_HeaderVariants(t *testing.T) {
	b := block(
		"TITEL: Curry",
		"anleitung",
		"Kochen",
		"ZUTATEN:",
		"* Reis",
	)

	r, ok := ParseStructured(b)
	require.True(t, ok)
	assert.Equal(t, "Curry", r.Title)
	assert.Equal(t, []string{"Reis"}, r.Ingredients)
	assert.Equal(t, []string{"Kochen"}, r.Steps)
}

func TestParseStructured_TitleFromFirstLine(t *testing.T) {
	b := block(
		"Schokoladenkuchen",
		"",
		"Zutaten:",
		"- 200g Mehl",
		"- 100g Zucker",
		"",
		"Zubereitung:",
		"1. Zutaten mischen.",
		"2. 30 Minuten backen.",
	)

	r, ok := ParseStructured(b)
	require.True(t, ok)
	assert.Equal(t, "Schokoladenkuchen", r.Title)
	assert.Contains(t, r.Ingredients, "200g Mehl")
	assert.Equal(t, []string{"Zutaten mischen.", "30 Minuten backen."}, r.Steps)
}

func TestParseStructured_StepOrderFollowsSource(t *testing.T) {
	// Mismatched ordinals must not reorder steps.
	b := block(
		"Titel: Suppe",
		"Zubereitung:",
		"3. Schneiden",
		"1. Kochen",
		"2. Salzen",
	)

	r, ok := ParseStructured(b)
	require.True(t, ok)
	assert.Equal(t, []string{"Schneiden", "Kochen", "Salzen"}, r.Steps)
}

func TestParseStructured_UnknownHeaderLikeLineIsContent(t *testing.T) {
	b := block(
		"Titel: Suppe",
		"Zutaten:",
		"Gewürze:",
		"- Salz",
	)

	r, ok := ParseStructured(b)
	require.True(t, ok)
	assert.Equal(t, []string{"Gewürze:", "Salz"}, r.Ingredients)
}

func TestParseStructured_InsufficientStructure(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"title only", []string{"Titel: Nur ein Titel"}},
		{"no recognized sections", []string{"Pfannkuchen", "Milch", "Eier"}},
		{"empty sections", []string{"Titel: Leer", "Zutaten:", "Zubereitung:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseStructured(block(tt.lines...))
			assert.False(t, ok)
		})
	}
}

func TestParseStructured_RoundTrip(t *testing.T) {
	// Re-serializing the parsed record into the canonical layout and parsing
	// again must reproduce equivalent field contents.
	b := block(
		"Titel: Gulasch",
		"Kategorie:",
		"Eintopf/Fleisch",
		"Zutaten:",
		"- 800g Rindfleisch",
		"- 3 Zwiebeln",
		"Zubereitung:",
		"1. Anbraten",
		"2. Schmoren",
	)

	first, ok := ParseStructured(b)
	require.True(t, ok)

	lines := []string{"Titel: " + first.Title, "Kategorie:", first.Category, "Zutaten:"}
	lines = append(lines, first.Ingredients...)
	lines = append(lines, "Zubereitung:")
	lines = append(lines, first.Steps...)

	second, ok := ParseStructured(model.RecipeBlock{Lines: lines, StartLine: 1})
	require.True(t, ok)
	assert.Equal(t, first, second)
}
