package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/tui/themes"
	"github.com/platewatch/platewatch/internal/tui/viewmodel"
)

// GroupingFields are the fields the category view groups by.
var GroupingFields = []string{"category", "city"}

const sampleItems = 3

// CategoriesModel renders records grouped by category and city, with a
// free-text search and a category filter.
type CategoriesModel struct {
	theme       themes.Theme
	records     []model.Record
	grouping    *compliance.Grouping
	searchInput textinput.Model
	categories  []string
	categoryIdx int // 0 means all categories
	offset      int
	searching   bool
	width       int
	height      int
}

// NewCategoriesModel creates the grouped-category view.
func NewCategoriesModel(records []model.Record, theme themes.Theme) CategoriesModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search by name, city, or address..."
	searchInput.CharLimit = 50

	m := CategoriesModel{
		theme:       theme,
		records:     records,
		searchInput: searchInput,
		categories:  viewmodel.UniqueCategories(records),
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

// SetRecords replaces the record set and resets filters.
func (m *CategoriesModel) SetRecords(records []model.Record) {
	m.records = records
	m.categories = viewmodel.UniqueCategories(records)
	m.categoryIdx = 0
	m.offset = 0
	m.refresh()
}

// Resize updates the component size.
func (m *CategoriesModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Searching reports whether the search input has focus.
func (m CategoriesModel) Searching() bool { return m.searching }

// selectedCategory returns the active category filter.
func (m CategoriesModel) selectedCategory() string {
	if m.categoryIdx == 0 || m.categoryIdx > len(m.categories) {
		return viewmodel.AllCategories
	}
	return m.categories[m.categoryIdx-1]
}

// Update handles search, filter, and scroll keys.
func (m CategoriesModel) Update(msg tea.Msg) (CategoriesModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "enter", "esc":
			m.searching = false
			m.searchInput.Blur()
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.refresh()
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		m.categoryIdx = (m.categoryIdx + 1) % (len(m.categories) + 1)
		m.refresh()
	case "F":
		m.categoryIdx--
		if m.categoryIdx < 0 {
			m.categoryIdx = len(m.categories)
		}
		m.refresh()
	case "down", "j":
		if m.offset < m.grouping.Len()-1 {
			m.offset++
		}
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "home", "g":
		m.offset = 0
	}

	return m, nil
}

// refresh recomputes the grouping from the current search and filter.
func (m *CategoriesModel) refresh() {
	filtered := viewmodel.FilterGroups(m.records, m.searchInput.Value(), m.selectedCategory())
	m.grouping = compliance.GroupBy(filtered, GroupingFields)
	m.offset = 0
}

// View renders the controls and as many group panels as fit.
func (m CategoriesModel) View() string {
	sections := []string{m.renderControls()}

	if m.grouping.Len() == 0 {
		sections = append(sections, m.theme.Muted.Render("No results match the current filters."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	groups := m.grouping.Groups()
	used := 2 // controls + spacing
	for i := m.offset; i < len(groups); i++ {
		panel := m.renderGroup(groups[i])
		panelHeight := lipgloss.Height(panel)
		if used+panelHeight > m.height && i > m.offset {
			remaining := len(groups) - i
			sections = append(sections,
				m.theme.Muted.Render(fmt.Sprintf("… %d more groups (j/k to scroll)", remaining)))
			break
		}
		sections = append(sections, panel)
		used += panelHeight
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CategoriesModel) renderControls() string {
	category := m.selectedCategory()
	if category == viewmodel.AllCategories {
		category = "All"
	}

	var search string
	if m.searching {
		search = m.searchInput.View()
	} else if query := m.searchInput.Value(); query != "" {
		search = m.theme.Muted.Render(fmt.Sprintf("search: %q (/ to edit)", query))
	} else {
		search = m.theme.Muted.Render("/ search · f filter type")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		search,
		m.theme.Muted.Render("  ·  type: "),
		m.theme.Bold.Render(category),
	)
}

func (m CategoriesModel) renderGroup(group *compliance.Group) string {
	compliant := group.Tally.ByStatus[model.StatusCompliant]
	violations := group.Tally.ByStatus[model.StatusViolations]

	percent := "N/A"
	if group.Tally.Total > 0 {
		percent = fmt.Sprintf("%.1f%%", group.Tally.Percent(model.StatusCompliant))
	}

	stats := fmt.Sprintf("Total: %d · Compliance: %s (%s %d, %s %d)",
		group.Tally.Total,
		percent,
		m.theme.StatusStyle(model.StatusCompliant).Render("✔"), compliant,
		m.theme.StatusStyle(model.StatusViolations).Render("✘"), violations,
	)

	lines := []string{
		m.theme.Bold.Render(group.Key),
		stats,
	}

	samples := group.Items
	if len(samples) > sampleItems {
		samples = samples[:sampleItems]
	}
	for i, item := range samples {
		status := compliance.Classify(item)
		lines = append(lines, fmt.Sprintf("  %d. %s — %s",
			i+1,
			truncate(item.DisplayName(), 30),
			m.theme.StatusStyle(status).Render(truncate(item.DisplayResults(), 40)),
		))
	}

	width := min(m.width-2, 100)
	return m.theme.RoundedBox.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}
