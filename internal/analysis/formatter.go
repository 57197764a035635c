package analysis

import (
	"fmt"
	"strings"
)

// CLIFormatter renders a report for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
	}
}

// FormatReport renders the complete report.
func (f *CLIFormatter) FormatReport(report *Report) string {
	if report == nil {
		return f.styles.Error.Render("No report available")
	}

	var sections []string

	sections = append(sections, f.formatSummary(report.Summary))

	for i, item := range report.Items {
		sections = append(sections, f.FormatItem(i, item))
	}

	if len(report.SimilarCandidates) > 0 {
		sections = append(sections, f.formatSimilarCandidates(report.SimilarCandidates))
	}

	sections = append(sections, f.styles.Subtle.Render(report.Disclaimer))

	return strings.Join(sections, "\n\n")
}

// FormatItem renders a single per-recipe result.
func (f *CLIFormatter) FormatItem(index int, res Result) string {
	var lines []string

	title := res.Title
	if title == "" {
		title = "(ohne Titel)"
	}
	header := fmt.Sprintf("%2d. %s %s",
		index+1,
		f.styles.Normal.Render(title),
		f.styles.scoreStyle(res.Score).Render(fmt.Sprintf("[%d/100]", res.Score)))
	lines = append(lines, header)

	for _, issue := range res.Issues {
		lines = append(lines, "    "+f.styles.Error.Render("✗ "+string(issue)))
	}
	for _, w := range res.Warnings {
		text := string(w.Code)
		if w.Field != "" {
			text += " (" + w.Field + ")"
		}
		lines = append(lines, "    "+f.styles.Warning.Render("⚠ "+text))
	}
	for _, hint := range res.HealthHints {
		lines = append(lines, "    "+f.styles.Info.Render("♥ "+hint))
	}

	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatSummary(s Summary) string {
	header := f.styles.Title.Render("Analysebericht")
	body := fmt.Sprintf("Rezepte: %d   Ø Score: %.1f   Probleme: %d   Hinweise: %d   Dubletten-Kandidaten: %d",
		s.Count, s.AverageScore, s.TotalIssues, s.TotalWarnings, s.SimilarCandidates)
	return header + "\n" + f.styles.Box.Render(body)
}

func (f *CLIFormatter) formatSimilarCandidates(pairs []SimilarPair) string {
	lines := []string{f.styles.Title.Render("Mögliche Dubletten")}
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("  %s ↔ %s %s",
			p.TitleA, p.TitleB,
			f.styles.Subtle.Render(fmt.Sprintf("(%.0f%%)", p.Similarity*100))))
	}
	return strings.Join(lines, "\n")
}
