package analysis

import (
	"strings"
	"unicode"

	"github.com/izebair/Rezepte/internal/model"
)

// DefaultSimilarityThreshold is the Dice coefficient above which two recipes
// count as duplicate candidates.
const DefaultSimilarityThreshold = 0.5

// tokenPrefixLen truncates tokens before comparison so inflected variants
// ("Tomatensauce", "Tomatensoße") still collide.
const tokenPrefixLen = 6

// SimilarCandidates compares every recipe pair by token overlap over title
// and ingredients and returns the pairs at or above the threshold, ordered
// by index. Deterministic for identical input.
func SimilarCandidates(recipes []model.Recipe, threshold float64) []SimilarPair {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	profiles := make([]map[string]struct{}, len(recipes))
	for i, r := range recipes {
		profiles[i] = tokenProfile(r)
	}

	var pairs []SimilarPair
	for i := 0; i < len(recipes); i++ {
		for j := i + 1; j < len(recipes); j++ {
			sim := diceCoefficient(profiles[i], profiles[j])
			if sim >= threshold {
				pairs = append(pairs, SimilarPair{
					IndexA:     i,
					IndexB:     j,
					TitleA:     recipes[i].Title,
					TitleB:     recipes[j].Title,
					Similarity: sim,
				})
			}
		}
	}
	return pairs
}

// tokenProfile builds the comparison token set for a recipe: lowercased
// words of at least two runes from title and ingredients, truncated to
// tokenPrefixLen runes.
func tokenProfile(r model.Recipe) map[string]struct{} {
	tokens := make(map[string]struct{})

	collect := func(text string) {
		words := strings.FieldsFunc(strings.ToLower(text), func(c rune) bool {
			return !unicode.IsLetter(c) && !unicode.IsDigit(c)
		})
		for _, w := range words {
			runes := []rune(w)
			if len(runes) < 2 {
				continue
			}
			if len(runes) > tokenPrefixLen {
				runes = runes[:tokenPrefixLen]
			}
			tokens[string(runes)] = struct{}{}
		}
	}

	collect(r.Title)
	for _, ing := range r.Ingredients {
		collect(ing)
	}
	return tokens
}

// diceCoefficient computes 2·|A∩B| / (|A|+|B|) for two token sets.
func diceCoefficient(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := 0
	for t := range a {
		if _, ok := b[t]; ok {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(a)+len(b))
}
