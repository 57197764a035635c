package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeBlockIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"no lines", nil, true},
		{"only whitespace", []string{"", "  ", "\t"}, true},
		{"content", []string{"", "Suppe"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := RecipeBlock{Lines: tt.lines}
			assert.Equal(t, tt.want, b.IsEmpty())
		})
	}
}

func TestNewRecipeInitializesSlices(t *testing.T) {
	r := NewRecipe(ParseModeFallback)

	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Steps)
	assert.NotNil(t, r.Images)
	assert.Equal(t, ParseModeFallback, r.ParseMode)
}

func TestEffectiveTitle(t *testing.T) {
	r := NewRecipe(ParseModeStructured)
	r.Title = "Lasagne"
	assert.Equal(t, "Lasagne", r.EffectiveTitle())

	r.DisplayTitle = "[Vegetarisch] Lasagne"
	assert.Equal(t, "[Vegetarisch] Lasagne", r.EffectiveTitle())
}
