package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard: tab bar, active view, status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTabs(),
			m.renderHelp(),
			m.renderStatusBar(),
		)
	}

	var content string
	switch m.view {
	case ViewCards:
		content = m.cards.View()
	case ViewTable:
		content = m.table.View()
	case ViewCategories:
		content = m.categories.View()
	case ViewStats:
		content = m.stats.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		content,
		m.renderStatusBar(),
	)
}

// renderTabs renders the view-selection bar.
func (m Model) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := ViewCards; v < View(viewCount); v++ {
		label := fmt.Sprintf("%d %s", int(v)+1, v)
		if v == m.view {
			tabs = append(tabs, m.config.Theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.config.Theme.TabInactive.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// renderStatusBar renders the dataset provenance, any status message, and
// the help hint.
func (m Model) renderStatusBar() string {
	parts := []string{fmt.Sprintf("%d records", len(m.config.Records))}

	if m.config.Dataset != nil {
		parts = append(parts, fmt.Sprintf("fetched %s",
			m.config.Dataset.FetchedAt.Local().Format("2006-01-02 15:04")))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	parts = append(parts, "? help")

	return m.config.Theme.StatusBar.Render(strings.Join(parts, " · "))
}

// renderHelp renders the full help overlay.
func (m Model) renderHelp() string {
	theme := m.config.Theme

	sections := []string{
		theme.Title.Render("Keyboard Shortcuts"),
		theme.Subtitle.Render("Views"),
		"  1-4        switch view directly",
		"  Tab        cycle views",
		theme.Subtitle.Render("Cards"),
		"  ←/→  h/l   previous / next page",
		"  g/G        first / last page",
		theme.Subtitle.Render("Table"),
		"  /          filter by name or category",
		"  s          cycle sort column",
		"  o          toggle sort order",
		"  e          export visible rows to CSV",
		"  j/k        move row selection",
		theme.Subtitle.Render("Categories"),
		"  /          search name, city, address",
		"  f/F        cycle category filter",
		"  j/k        scroll groups",
		theme.Subtitle.Render("General"),
		"  ?          toggle this help",
		"  q/Esc      quit",
	}

	return theme.BorderedBox.Render(strings.Join(sections, "\n"))
}
