package analysis

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarCandidates_NapoliVariants(t *testing.T) {
	recipes := []model.Recipe{
		structured("Spaghetti Napoli", []string{"200 g Spaghetti", "Tomatensauce", "Knoblauch"}, []string{"Kochen"}),
		structured("Nudeln mit Tomatensosse", []string{"200 g Nudeln", "Tomatensoße", "Kräuter"}, []string{"Kochen"}),
	}

	pairs := SimilarCandidates(recipes, 0.35)

	require.Len(t, pairs, 1)
	assert.Equal(t, 0, pairs[0].IndexA)
	assert.Equal(t, 1, pairs[0].IndexB)
	assert.GreaterOrEqual(t, pairs[0].Similarity, 0.35)
}

func TestSimilarCandidates_UnrelatedRecipes(t *testing.T) {
	recipes := []model.Recipe{
		structured("Schokoladenkuchen", []string{"200g Mehl", "100g Zucker", "2 Eier"}, []string{"Backen"}),
		structured("Pfannkuchen", []string{"250ml Milch", "2 Eier", "150g Mehl"}, []string{"Braten"}),
	}

	assert.Empty(t, SimilarCandidates(recipes, 0.35))
}

func TestSimilarCandidates_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, SimilarCandidates(nil, 0.35))
	assert.Empty(t, SimilarCandidates([]model.Recipe{structured("Solo", nil, nil)}, 0.35))
}

func TestSimilarCandidates_Deterministic(t *testing.T) {
	recipes := []model.Recipe{
		structured("Tomatensuppe", []string{"500 g Tomaten", "Basilikum"}, nil),
		structured("Tomatensuppe mit Basilikum", []string{"500 g Tomaten", "Basilikum"}, nil),
		structured("Tomatencremesuppe", []string{"400 g Tomaten", "Sahne"}, nil),
	}

	first := SimilarCandidates(recipes, 0.3)
	second := SimilarCandidates(recipes, 0.3)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	for _, p := range first {
		assert.Less(t, p.IndexA, p.IndexB)
	}
}

func TestSimilarCandidates_ZeroThresholdUsesDefault(t *testing.T) {
	recipes := []model.Recipe{
		structured("Brot", []string{"Mehl"}, nil),
		structured("Kuchen", []string{"Zucker"}, nil),
	}

	// Nothing overlaps, so the default threshold reports no pairs.
	assert.Empty(t, SimilarCandidates(recipes, 0))
}
