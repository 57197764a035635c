package analysis

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/izebair/Rezepte/internal/model"
)

// BuildReport combines the ordered recipe sequence and its parallel result
// sequence into one report. Both sequences must have equal length; order is
// preserved as-is.
func BuildReport(recipes []model.Recipe, results []Result, similarityThreshold float64) (Report, error) {
	if len(recipes) != len(results) {
		return Report{}, fmt.Errorf("recipe/result count mismatch: %d vs %d", len(recipes), len(results))
	}

	similar := SimilarCandidates(recipes, similarityThreshold)

	summary := Summary{
		Count:             len(results),
		SimilarCandidates: len(similar),
	}
	total := 0
	for _, res := range results {
		total += res.Score
		summary.TotalIssues += len(res.Issues)
		summary.TotalWarnings += len(res.Warnings)
	}
	if len(results) > 0 {
		summary.AverageScore = math.Round(float64(total)/float64(len(results))*10) / 10
	}

	return Report{
		Summary:           summary,
		Items:             results,
		SimilarCandidates: similar,
		Disclaimer:        Disclaimer,
	}, nil
}

// AnalyzeAll runs the analyzer over every recipe, preserving order.
func AnalyzeAll(recipes []model.Recipe) []Result {
	results := make([]Result, len(recipes))
	for i, r := range recipes {
		results[i] = Analyze(r)
	}
	return results
}

// MarshalIndent renders the report as indented JSON for the report sink.
func (r Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
