package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/tui/themes"
)

const distributionBarWidth = 24

// StatsModel renders the statistics view: the overall compliance summary,
// the status distribution, and the top categories by inspection volume.
type StatsModel struct {
	theme         themes.Theme
	summary       compliance.Summary
	categoryStats []compliance.CategoryStat
	rateBar       progress.Model
	width         int
	height        int
}

// NewStatsModel computes the summary over the full record set.
func NewStatsModel(records []model.Record, theme themes.Theme) StatsModel {
	m := StatsModel{
		theme:  theme,
		width:  80,
		height: 24,
	}
	m.SetRecords(records)
	return m
}

// SetRecords recomputes the summary for a new record set.
func (m *StatsModel) SetRecords(records []model.Record) {
	m.summary = compliance.Summarize(records)
	m.categoryStats = compliance.SummarizeByCategory(records)

	band := compliance.BandFor(m.summary.ComplianceRate)
	color := string(m.theme.BandColor(band))
	m.rateBar = progress.New(progress.WithSolidFill(color))
	m.rateBar.ShowPercentage = false
	m.rateBar.Width = min(m.width-6, 40)
}

// Resize updates the component size.
func (m *StatsModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.rateBar.Width = min(width-6, 40)
}

// Update handles messages. The stats view is read-only.
func (m StatsModel) Update(_ tea.Msg) (StatsModel, tea.Cmd) {
	return m, nil
}

// View renders the stat cards and both breakdowns.
func (m StatsModel) View() string {
	sections := []string{
		m.renderHeadline(),
		m.renderDistribution(),
	}
	if len(m.categoryStats) > 0 {
		sections = append(sections, m.renderTopCategories())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeadline renders the three stat cards: total inspections, overall
// compliance rate, unique cities.
func (m StatsModel) renderHeadline() string {
	band := compliance.BandFor(m.summary.ComplianceRate)
	rateStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.BandColor(band))

	total := m.statCard("Total Restaurants",
		m.theme.Bold.Render(fmt.Sprintf("%d", m.summary.Tally.Total)))

	rate := m.statCard("Overall Compliance Rate",
		lipgloss.JoinVertical(lipgloss.Left,
			rateStyle.Render(m.summary.RateLabel()),
			m.rateBar.ViewAs(m.summary.ComplianceRate/100),
		))

	cities := m.statCard("Unique Cities Served",
		m.theme.Bold.Render(fmt.Sprintf("%d", m.summary.UniqueCities)))

	return lipgloss.JoinHorizontal(lipgloss.Top, total, rate, cities)
}

func (m StatsModel) statCard(title, body string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render(title),
		body,
	)
	return m.theme.RoundedBox.Render(content)
}

// renderDistribution renders one bar per status, scaled to the largest
// status count.
func (m StatsModel) renderDistribution() string {
	title := m.theme.Subtitle.Render("Compliance Distribution")

	maxCount := 0
	for _, s := range model.AllStatuses() {
		if c := m.summary.Tally.ByStatus[s]; c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.theme.Muted.Render("no records"))
	}

	var lines []string
	for _, s := range model.AllStatuses() {
		count := m.summary.Tally.ByStatus[s]
		barLen := count * distributionBarWidth / maxCount
		bar := m.theme.StatusStyle(s).Render(strings.Repeat("█", barLen))
		lines = append(lines, fmt.Sprintf("%-26s %s %d", string(s), bar, count))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}

// renderTopCategories renders the top-10-by-volume category rates, one bar
// per category colored by its compliance band.
func (m StatsModel) renderTopCategories() string {
	title := m.theme.Subtitle.Render(
		fmt.Sprintf("Compliance Rate by Category (top %d by volume, min %d inspections)",
			compliance.TopCategories, compliance.MinCategorySupport))

	var lines []string
	for _, stat := range m.categoryStats {
		rate := stat.Percent(model.StatusCompliant)
		band := compliance.BandFor(rate)

		filled := int(rate / 100 * distributionBarWidth)
		if filled > distributionBarWidth {
			filled = distributionBarWidth
		}
		bar := lipgloss.NewStyle().Foreground(m.theme.BandColor(band)).
			Render(strings.Repeat("█", filled)) +
			m.theme.BarEmpty.Render(strings.Repeat("░", distributionBarWidth-filled))

		lines = append(lines, fmt.Sprintf("%-22s %s %5.1f%% of %d",
			truncate(stat.Category, 22), bar, rate, stat.Tally.Total))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}
