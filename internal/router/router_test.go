package router

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRoute_Precedence(t *testing.T) {
	m := Mapping{"a/b": "X", "a": "Y"}
	cfg := Config{DefaultSection: "Inbox"}

	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"exact full-key match", "a/b", "X"},
		{"bare category match", "a/c", "Y"},
		{"identity fallback", "z", "z"},
		{"identity fallback with subcategory", "z/w", "z"},
		{"empty category uses default section", "", "Inbox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Route(model.Recipe{Category: tt.category}, m, cfg)
			assert.Equal(t, tt.want, r.Section)
		})
	}
}

func TestRoute_CaseInsensitiveLookup(t *testing.T) {
	m := Mapping{"asiatisch": "International"}

	r := Route(model.Recipe{Title: "Rotes Curry", Category: "Asiatisch/Curry"}, m, Config{PrefixSubcategory: true})

	assert.Equal(t, "International", r.Section)
	assert.Equal(t, "[Curry] Rotes Curry", r.DisplayTitle)
	assert.Equal(t, "Rotes Curry", r.Title)
	assert.Equal(t, "Asiatisch", r.Category)
	assert.Equal(t, "Curry", r.Subcategory)
}

func TestRoute_NoPrefixWithoutSubcategory(t *testing.T) {
	r := Route(model.Recipe{Title: "Brot", Category: "Backen"}, Mapping{}, Config{PrefixSubcategory: true})

	assert.Equal(t, "Brot", r.DisplayTitle)
	assert.Equal(t, "Backen", r.Section)
}

func TestRoute_PrefixDisabled(t *testing.T) {
	r := Route(model.Recipe{Title: "Linsensuppe", Category: "Suppen/Vegetarisch"}, Mapping{}, Config{})

	assert.Equal(t, "Suppen", r.Section)
	assert.Equal(t, "Linsensuppe", r.DisplayTitle)
}

func TestRoute_CustomSeparator(t *testing.T) {
	m := Mapping{"suppen|klar": "Brühen"}

	r := Route(model.Recipe{Title: "Consommé", Category: "Suppen|Klar"}, m, Config{Separator: "|"})

	assert.Equal(t, "Brühen", r.Section)
	assert.Equal(t, "Suppen", r.Category)
	assert.Equal(t, "Klar", r.Subcategory)
}

func TestRoute_DoesNotMutateInput(t *testing.T) {
	original := model.Recipe{Title: "Rotes Curry", Category: "Asiatisch/Curry"}

	_ = Route(original, Mapping{}, Config{PrefixSubcategory: true})

	assert.Equal(t, "Rotes Curry", original.Title)
	assert.Equal(t, "Asiatisch/Curry", original.Category)
	assert.Empty(t, original.Section)
}
