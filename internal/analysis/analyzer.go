package analysis

import (
	"regexp"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// Score weights. Issues weigh heavier than warnings; two or more protective
// ingredients earn a small bonus. The result is clamped to [0, 100].
const (
	maxScore        = 100
	issueWeight     = 20
	warningWeight   = 7
	protectiveBonus = 5
)

// measureRe recognizes quantity annotations such as "200 g", "2 EL" or
// "1 Tasse" in an ingredient line.
var measureRe = regexp.MustCompile(`(?i)\b\d+[\d.,]*\s*(g|kg|ml|l|tl|el|stk|stück|prise|tasse|cup)\b`)

// imageURLRe is the basic scheme check applied to image entries.
var imageURLRe = regexp.MustCompile(`(?i)^https?://`)

// Analyze evaluates a routed recipe against the fixed rule set and returns
// its analysis result. The function is pure: identical input always yields
// an identical result, with no randomness or clock dependence.
func Analyze(r model.Recipe) Result {
	res := Result{
		Title:       strings.TrimSpace(r.Title),
		Issues:      []IssueCode{},
		Warnings:    []Warning{},
		HealthHints: []string{},
	}

	ingredients := nonBlank(r.Ingredients)
	steps := nonBlank(r.Steps)

	// Structural defects.
	if res.Title == "" {
		res.Issues = append(res.Issues, IssueEmptyTitle)
	}
	if len(ingredients) == 0 {
		res.Issues = append(res.Issues, IssueNoIngredients)
	}
	if len(steps) == 0 {
		res.Issues = append(res.Issues, IssueNoSteps)
	}

	// Soft defects.
	if r.ParseMode == model.ParseModeFallback {
		res.Warnings = append(res.Warnings, Warning{Code: WarningUnstructuredSource})
	}
	for _, img := range r.Images {
		if !imageURLRe.MatchString(strings.TrimSpace(img)) {
			res.Warnings = append(res.Warnings, Warning{Code: WarningSuspectImageURL})
			break
		}
	}
	for _, meta := range []struct {
		field string
		value string
	}{
		{"servings", r.Servings},
		{"time", r.Time},
		{"difficulty", r.Difficulty},
	} {
		if strings.TrimSpace(meta.value) == "" {
			res.Warnings = append(res.Warnings, Warning{Code: WarningMissingMetadata, Field: meta.field})
		}
	}
	if strings.TrimSpace(r.Category) == "" {
		res.Warnings = append(res.Warnings, Warning{Code: WarningNoCategory})
	}
	if vagueQuantities(ingredients) {
		res.Warnings = append(res.Warnings, Warning{Code: WarningVagueQuantities})
	}

	// Health heuristics are additive only.
	res.Health, res.HealthHints = assessHealth(ingredients, steps)

	res.Score = score(len(res.Issues), len(res.Warnings), res.Health.ProtectiveHits)

	return res
}

// vagueQuantities reports whether more than max(2, n/2) ingredient lines
// lack a recognizable measurement.
func vagueQuantities(ingredients []string) bool {
	if len(ingredients) == 0 {
		return false
	}
	withoutMeasure := 0
	for _, ing := range ingredients {
		if !measureRe.MatchString(ing) {
			withoutMeasure++
		}
	}
	threshold := len(ingredients) / 2
	if threshold < 2 {
		threshold = 2
	}
	return withoutMeasure > threshold
}

func score(issues, warnings, protectiveHits int) int {
	s := maxScore - issueWeight*issues - warningWeight*warnings
	if protectiveHits >= 2 {
		s += protectiveBonus
	}
	if s < 0 {
		return 0
	}
	if s > maxScore {
		return maxScore
	}
	return s
}

func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, strings.TrimSpace(l))
		}
	}
	return out
}
