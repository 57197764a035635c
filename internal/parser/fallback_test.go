package parser

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFallback_NeverFails(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty block", nil},
		{"blank lines only", []string{"", "  ", ""}},
		{"free text", []string{"irgendein Text", "ohne Struktur dahinter und ohne erkennbare Marker überhaupt."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseFallback(model.RecipeBlock{Lines: tt.lines})

			assert.Equal(t, model.ParseModeFallback, r.ParseMode)
			assert.NotNil(t, r.Ingredients)
			assert.NotNil(t, r.Steps)
			assert.NotNil(t, r.Images)
		})
	}
}

func TestParseFallback_EmptyBlockHasEmptyTitle(t *testing.T) {
	r := ParseFallback(model.RecipeBlock{})
	assert.Equal(t, "", r.Title)
	assert.Empty(t, r.Ingredients)
	assert.Empty(t, r.Steps)
}

func TestParseFallback_Markers(t *testing.T) {
	r := ParseFallback(block(
		"Bratkartoffeln",
		"- 500g Kartoffeln",
		"* 2 Zwiebeln",
		"1. Kartoffeln kochen",
		"2) In der Pfanne braten",
		"https://example.com/foto.jpg",
		"Dies ist ein langer erklärender Satz, der verworfen werden sollte, weil er nichts Verwertbares enthält.",
	))

	assert.Equal(t, "Bratkartoffeln", r.Title)
	assert.Equal(t, []string{"500g Kartoffeln", "2 Zwiebeln"}, r.Ingredients)
	assert.Equal(t, []string{"Kartoffeln kochen", "In der Pfanne braten"}, r.Steps)
	assert.Equal(t, []string{"https://example.com/foto.jpg"}, r.Images)
}

func TestParseFallback_ShortLinesBecomeIngredients(t *testing.T) {
	r := ParseFallback(block(
		"Rührei",
		"3 Eier",
		"Salz und Pfeffer",
		"1. Verquirlen",
		"2. Stocken lassen",
	))

	assert.Equal(t, []string{"3 Eier", "Salz und Pfeffer"}, r.Ingredients)
	assert.Equal(t, []string{"Verquirlen", "Stocken lassen"}, r.Steps)
}

func TestParseFallback_ChunkHeuristic(t *testing.T) {
	r := ParseFallback(block(
		"Pfannkuchen",
		"",
		"250ml Milch",
		"2 Eier",
		"150g Mehl",
		"",
		"Alles verrühren",
		"In der Pfanne ausbacken",
	))

	assert.Equal(t, "Pfannkuchen", r.Title)
	assert.Equal(t, []string{"250ml Milch", "2 Eier", "150g Mehl"}, r.Ingredients)
	assert.Equal(t, []string{"Alles verrühren", "In der Pfanne ausbacken"}, r.Steps)
}

func TestParseFallback_TitleHeaderStillRecognized(t *testing.T) {
	r := ParseFallback(block("Titel: Nur ein Titel"))
	require.Equal(t, "Nur ein Titel", r.Title)
	assert.Empty(t, r.Ingredients)
	assert.Empty(t, r.Steps)
}
