package parser

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_StructuredRecipe(t *testing.T) {
	recipes := Parse("Titel: Suppe\n\nZutaten:\n- Wasser\n\nZubereitung:\n1. Kochen")

	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.Equal(t, "Suppe", r.Title)
	assert.Equal(t, []string{"Wasser"}, r.Ingredients)
	assert.Equal(t, []string{"Kochen"}, r.Steps)
	assert.Equal(t, model.ParseModeStructured, r.ParseMode)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParse_MixedSample(t *testing.T) {
	input := `Titel: Chili con Carne

Kategorie:
Mexikanisch

Zutaten:
- 500g Hackfleisch
- 1 Dose Bohnen

Zubereitung:
1. Anbraten
2. Kochen

Titel: Kaiserschmarrn

Zutaten:
- 2 Eier
- 150g Mehl

Zubereitung:
- Verrühren
- Ausbacken
`

	recipes := Parse(input)
	require.Len(t, recipes, 2)

	assert.Equal(t, "Chili con Carne", recipes[0].Title)
	assert.Equal(t, "Mexikanisch", recipes[0].Category)
	assert.Equal(t, []string{"Anbraten", "Kochen"}, recipes[0].Steps)

	assert.Equal(t, "Kaiserschmarrn", recipes[1].Title)
	assert.Equal(t, []string{"2 Eier", "150g Mehl"}, recipes[1].Ingredients)
	assert.Equal(t, []string{"Verrühren", "Ausbacken"}, recipes[1].Steps)
}

func TestParse_HeaderlessSampleUsesBlankRunSegmentation(t *testing.T) {
	input := `Schokoladenkuchen

Zutaten:
- 200g Mehl
- 100g Zucker
- 2 Eier

Zubereitung:
1. Zutaten mischen.
2. 30 Minuten backen.


Pfannkuchen

Zutaten:
* 250ml Milch
* 2 Eier
* 150g Mehl

Zubereitung:
- Mischen
- In der Pfanne braten
`

	recipes := Parse(input)
	require.Len(t, recipes, 2)

	assert.Equal(t, "Schokoladenkuchen", recipes[0].Title)
	assert.Contains(t, recipes[0].Ingredients, "200g Mehl")
	assert.Equal(t, model.ParseModeStructured, recipes[0].ParseMode)

	assert.Equal(t, "Pfannkuchen", recipes[1].Title)
	assert.Contains(t, recipes[1].Ingredients, "250ml Milch")
	assert.Equal(t, []string{"Mischen", "In der Pfanne braten"}, recipes[1].Steps)
}

func TestParse_MalformedBlockStillYieldsRecipe(t *testing.T) {
	input := "Titel: Gut\nZutaten:\n- Mehl\nZubereitung:\n1. Backen\n\nTitel: Kaputt\nnur Prosa hier\n\nTitel: Auch gut\nZutaten:\n- Salz\nZubereitung:\n1. Würzen\n"

	recipes := Parse(input)
	require.Len(t, recipes, 3)

	assert.Equal(t, model.ParseModeStructured, recipes[0].ParseMode)
	assert.Equal(t, model.ParseModeFallback, recipes[1].ParseMode)
	assert.Equal(t, "Kaputt", recipes[1].Title)
	assert.Equal(t, model.ParseModeStructured, recipes[2].ParseMode)
}
