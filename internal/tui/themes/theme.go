// Package themes defines the visual styles for the dashboard.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusBar     lipgloss.Style
	PageActive    lipgloss.Style
	PageInactive  lipgloss.Style
	BarFill       lipgloss.Style
	BarEmpty      lipgloss.Style
	statusStyles  map[model.Status]lipgloss.Style
	bandColors    map[compliance.RateBand]lipgloss.Color
	Primary       lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	MutedColor    lipgloss.Color
	Compliant     lipgloss.Color
	Violations    lipgloss.Color
	Schedule      lipgloss.Color
	Closed        lipgloss.Color
	Reopened      lipgloss.Color
}

// StatusStyle returns the style for a compliance status. Colors follow the
// dashboard convention: green compliant, red violations, orange schedule,
// gray closed, blue reopened.
func (t Theme) StatusStyle(s model.Status) lipgloss.Style {
	if style, ok := t.statusStyles[s]; ok {
		return style
	}
	return t.Normal
}

// BandColor returns the color for a compliance-rate band.
func (t Theme) BandColor(band compliance.RateBand) lipgloss.Color {
	if c, ok := t.bandColors[band]; ok {
		return c
	}
	return t.Foreground
}

// Default is the default theme.
var Default = newDefault()

func newDefault() Theme {
	var (
		primary    = lipgloss.Color("#7c3aed")
		foreground = lipgloss.Color("#fafafa")
		border     = lipgloss.Color("#404040")
		muted      = lipgloss.Color("#737373")
		compliant  = lipgloss.Color("#28a745")
		violations = lipgloss.Color("#dc3545")
		schedule   = lipgloss.Color("#ffc107")
		closed     = lipgloss.Color("#6c757d")
		reopened   = lipgloss.Color("#17a2b8")
	)

	return Theme{
		Primary:    primary,
		Border:     border,
		Foreground: foreground,
		MutedColor: muted,
		Compliant:  compliant,
		Violations: violations,
		Schedule:   schedule,
		Closed:     closed,
		Reopened:   reopened,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a3a3a3")).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(foreground).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(border).
			Foreground(foreground),
		Box: lipgloss.NewStyle().
			Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			Background(primary).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		StatusBar: lipgloss.NewStyle().
			Foreground(muted),
		PageActive: lipgloss.NewStyle().
			Bold(true).
			Background(primary).
			Foreground(foreground).
			Padding(0, 1),
		PageInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		BarFill: lipgloss.NewStyle().
			Foreground(primary),
		BarEmpty: lipgloss.NewStyle().
			Foreground(border),

		statusStyles: map[model.Status]lipgloss.Style{
			model.StatusCompliant:          lipgloss.NewStyle().Foreground(compliant),
			model.StatusViolations:         lipgloss.NewStyle().Foreground(violations),
			model.StatusComplianceSchedule: lipgloss.NewStyle().Foreground(schedule),
			model.StatusFacilityClosed:     lipgloss.NewStyle().Foreground(closed),
			model.StatusFacilityReopened:   lipgloss.NewStyle().Foreground(reopened),
		},
		bandColors: map[compliance.RateBand]lipgloss.Color{
			compliance.BandHigh: compliant,
			compliance.BandMid:  schedule,
			compliance.BandLow:  violations,
		},
	}
}
