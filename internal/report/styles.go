package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers (e.g. "=== Name ===").
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// ClassPlain through ClassIndexer color-code identity classes.
	ClassPlain    lipgloss.Style
	ClassOverload lipgloss.Style
	ClassGeneric  lipgloss.Style
	ClassIndexer  lipgloss.Style

	// Conflict styles conflict entries.
	Conflict lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		ClassPlain:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		ClassOverload: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		ClassGeneric:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		ClassIndexer:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),

		Conflict: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ClassStyle returns the style for an identity class string.
func (s Styles) ClassStyle(class string) lipgloss.Style {
	switch class {
	case "overload_group":
		return s.ClassOverload
	case "generic":
		return s.ClassGeneric
	case "indexer":
		return s.ClassIndexer
	default:
		return s.ClassPlain
	}
}
