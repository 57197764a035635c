package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_TitleHeaders(t *testing.T) {
	input := `Titel: Chili con Carne

Zutaten:
- 500g Hackfleisch

Titel: Kaiserschmarrn

Zutaten:
- 2 Eier

Titel: Linsensuppe

Zutaten:
- 200g Linsen
`

	blocks := Segment(input)
	require.Len(t, blocks, 3)

	assert.Equal(t, "Titel: Chili con Carne", blocks[0].Lines[0])
	assert.Equal(t, "Titel: Kaiserschmarrn", blocks[1].Lines[0])
	assert.Equal(t, "Titel: Linsensuppe", blocks[2].Lines[0])

	// Source order is preserved via ascending line offsets.
	assert.Less(t, blocks[0].StartLine, blocks[1].StartLine)
	assert.Less(t, blocks[1].StartLine, blocks[2].StartLine)
}

func TestSegment_BlankRunFallback(t *testing.T) {
	input := "Schokoladenkuchen\nMehl und Zucker\n\n\nPfannkuchen\nMilch und Eier\n"

	blocks := Segment(input)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Schokoladenkuchen", blocks[0].Lines[0])
	assert.Equal(t, "Pfannkuchen", blocks[1].Lines[0])
}

func TestSegment_SingleBlankLineDoesNotSplit(t *testing.T) {
	// One blank line separates sections within a recipe, not recipes.
	input := "Pfannkuchen\n\nMilch\nEier\n"

	blocks := Segment(input)
	require.Len(t, blocks, 1)
}

func TestSegment_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only whitespace", "   \n\t\n\n  \n"},
		{"only blank runs", "\n\n\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Segment(tt.input))
		})
	}
}

func TestSegment_TrailingBlankMaterial(t *testing.T) {
	input := "Titel: Suppe\nZutaten:\n- Wasser\n\n\n\n   \n"

	blocks := Segment(input)
	require.Len(t, blocks, 1)
	assert.Equal(t, "- Wasser", blocks[0].Lines[len(blocks[0].Lines)-1])
}

func TestSegment_CRLFInput(t *testing.T) {
	input := "Titel: A\r\nZutaten:\r\n- x\r\n\r\nTitel: B\r\nZutaten:\r\n- y\r\n"

	blocks := Segment(input)
	require.Len(t, blocks, 2)
	assert.Equal(t, "- x", blocks[0].Lines[2])
}
