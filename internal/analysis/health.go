package analysis

import (
	"sort"
	"strings"
)

// Keyword sets for the heuristic health rules. Matching is substring-based
// over the lowercased ingredient and step text, so "Baconwürfel" still hits
// "bacon".
var riskKeywords = map[string][]string{
	"processed_meat": {"pancetta", "speck", "salami", "wurst", "schinken", "bacon"},
	"red_meat":       {"rind", "schwein", "hackfleisch"},
	"high_sugar":     {"zucker", "sirup"},
	"deep_fried":     {"frittier", "fritier", "ausbacken"},
}

var protectiveKeywords = []string{
	"brokkoli", "beeren", "hafer", "linsen", "hülsenfrüchte", "spinat", "kurkuma", "nüsse", "leinsamen",
}

// Advisory hint texts per risk flag.
var riskHints = map[string]string{
	"processed_meat": "Verarbeitetes Fleisch erkannt – ggf. durch pflanzliche Alternative ersetzen",
	"red_meat":       "Rotes Fleisch erkannt – Verzehr in Maßen empfohlen",
	"high_sugar":     "Zuckeranteil prüfen und ggf. reduzieren",
	"deep_fried":     "Frittierte Zubereitung erkannt – Backofen oder Pfanne als Alternative prüfen",
}

const (
	hintProtective    = "Rezept enthält mehrere nährstoffreiche Komponenten"
	hintAddProtective = "Optional mehr ballaststoffreiche Zutaten/Kräuter ergänzen"
)

// assessHealth scans ingredients and steps for risk and protective keywords.
// The outcome is advisory only and never lowers the quality score. Flags and
// hints are emitted in a fixed order to keep reports deterministic.
func assessHealth(ingredients, steps []string) (Health, []string) {
	text := strings.ToLower(strings.Join(ingredients, " | ") + " | " + strings.Join(steps, " | "))

	flags := make([]string, 0, len(riskKeywords))
	for flag, needles := range riskKeywords {
		if containsAny(text, needles) {
			flags = append(flags, flag)
		}
	}
	sort.Strings(flags)

	protective := 0
	for _, w := range protectiveKeywords {
		if strings.Contains(text, w) {
			protective++
		}
	}

	hints := make([]string, 0, len(flags)+1)
	if protective >= 2 {
		hints = append(hints, hintProtective)
	} else {
		hints = append(hints, hintAddProtective)
	}
	for _, flag := range flags {
		hints = append(hints, riskHints[flag])
	}

	h := Health{
		RiskFlags:      flags,
		ProtectiveHits: protective,
		Prostate:       SuitabilityOK,
		Breast:         SuitabilityOK,
	}
	if hasFlag(flags, "processed_meat") || hasFlag(flags, "red_meat") {
		h.Prostate = SuitabilityLimited
		h.Breast = SuitabilityLimited
	}

	return h, hints
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
