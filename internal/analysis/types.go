// Package analysis evaluates parsed recipes against a fixed rule set and
// assembles the per-run quality report.
package analysis

// IssueCode identifies a structural defect that blocks confident import.
type IssueCode string

const (
	// IssueEmptyTitle flags a recipe without a usable title.
	IssueEmptyTitle IssueCode = "EMPTY_TITLE"
	// IssueNoIngredients flags a recipe with an empty ingredient list.
	IssueNoIngredients IssueCode = "NO_INGREDIENTS"
	// IssueNoSteps flags a recipe with an empty preparation list.
	IssueNoSteps IssueCode = "NO_STEPS"
)

// WarningCode identifies a non-blocking concern.
type WarningCode string

const (
	// WarningUnstructuredSource marks recipes recovered by the fallback parser.
	WarningUnstructuredSource WarningCode = "UNSTRUCTURED_SOURCE"
	// WarningSuspectImageURL marks recipes with image entries that are not
	// http(s) URLs.
	WarningSuspectImageURL WarningCode = "SUSPECT_IMAGE_URL"
	// WarningMissingMetadata marks an empty servings, time, or difficulty
	// field. Emitted once per missing field with the field name recorded.
	WarningMissingMetadata WarningCode = "MISSING_METADATA"
	// WarningNoCategory marks recipes without a category.
	WarningNoCategory WarningCode = "NO_CATEGORY"
	// WarningVagueQuantities marks recipes where most ingredients carry no
	// recognizable measurement.
	WarningVagueQuantities WarningCode = "VAGUE_QUANTITIES"
)

// Warning is a warning code plus the field it refers to, when applicable.
type Warning struct {
	Code  WarningCode `json:"code"`
	Field string      `json:"field,omitempty"`
}

// Suitability is the heuristic dietary assessment carried by health hints.
type Suitability string

const (
	// SuitabilityOK means no risk keywords were detected.
	SuitabilityOK Suitability = "geeignet"
	// SuitabilityLimited means risk keywords suggest moderation.
	SuitabilityLimited Suitability = "bedingt"
)

// Health summarizes the keyword-based health heuristics for one recipe.
// Purely advisory: it never lowers the quality score, and the report-level
// disclaimer applies to all of it.
type Health struct {
	RiskFlags      []string    `json:"risk_flags"`
	ProtectiveHits int         `json:"protective_hits"`
	Prostate       Suitability `json:"prostata_krebs"`
	Breast         Suitability `json:"brustkrebs"`
}

// Result is the immutable per-recipe analysis outcome. Results are kept
// parallel to the recipe sequence and referenced by index, which keeps
// parsing and analysis independently testable.
type Result struct {
	Title       string      `json:"title"`
	Score       int         `json:"score"`
	Issues      []IssueCode `json:"issues"`
	Warnings    []Warning   `json:"warnings"`
	HealthHints []string    `json:"health_hints"`
	Health      Health      `json:"health"`
}

// SimilarPair records two recipes whose token profiles overlap enough to be
// duplicate candidates.
type SimilarPair struct {
	IndexA     int     `json:"index_a"`
	IndexB     int     `json:"index_b"`
	TitleA     string  `json:"title_a"`
	TitleB     string  `json:"title_b"`
	Similarity float64 `json:"similarity"`
}

// Summary aggregates the per-recipe results.
type Summary struct {
	Count             int     `json:"count"`
	AverageScore      float64 `json:"average_quality_score"`
	TotalIssues       int     `json:"total_issues"`
	TotalWarnings     int     `json:"total_warnings"`
	SimilarCandidates int     `json:"similar_candidates"`
}

// Report is the complete, serializable analysis output. Item order always
// matches the source order of the recipe blocks; identical input and
// configuration produce byte-identical reports.
type Report struct {
	Summary           Summary       `json:"summary"`
	Items             []Result      `json:"items"`
	SimilarCandidates []SimilarPair `json:"similar_candidates,omitempty"`
	Disclaimer        string        `json:"medical_disclaimer"`
}

// Disclaimer is attached once per report, never to individual hints.
const Disclaimer = "Automatisch erzeugte Hinweise ersetzen keine medizinische Beratung."
