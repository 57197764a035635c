package analysis

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/izebair/Rezepte/internal/cli"
)

// Styles contains the styling definitions for report formatting.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Subtle  lipgloss.Style
	Normal  lipgloss.Style

	ScoreGood lipgloss.Style
	ScoreFair lipgloss.Style
	ScorePoor lipgloss.Style
	Box       lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:   cli.TitleStyle,
		Success: cli.SuccessStyle,
		Warning: cli.WarningStyle,
		Error:   cli.ErrorStyle,
		Info:    cli.InfoStyle,
		Subtle:  cli.SubtleStyle,
		Normal:  lipgloss.NewStyle(),
	}

	s.ScoreGood = lipgloss.NewStyle().Bold(true).Foreground(cli.SuccessColor)
	s.ScoreFair = lipgloss.NewStyle().Bold(true).Foreground(cli.WarningColor)
	s.ScorePoor = lipgloss.NewStyle().Bold(true).Foreground(cli.ErrorColor)

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	return s
}

// scoreStyle picks the style matching a quality score.
func (s *Styles) scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return s.ScoreGood
	case score >= 50:
		return s.ScoreFair
	default:
		return s.ScorePoor
	}
}
