package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/tui/themes"
	"github.com/platewatch/platewatch/internal/tui/viewmodel"
)

// TableModel renders the sortable, filterable record table.
type TableModel struct {
	theme       themes.Theme
	records     []model.Record
	visible     []model.Record
	table       table.Model
	searchInput textinput.Model
	sort        viewmodel.SortConfig
	searching   bool
	width       int
	height      int
}

// NewTableModel creates the table view over the full record set.
func NewTableModel(records []model.Record, theme themes.Theme) TableModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Category", Width: 18},
		{Title: "Address", Width: 24},
		{Title: "Results", Width: 30},
		{Title: "Date", Width: 10},
		{Title: "Owner", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Filter by name or category..."
	searchInput.CharLimit = 50

	m := TableModel{
		theme:       theme,
		records:     records,
		table:       t,
		searchInput: searchInput,
		sort:        viewmodel.SortConfig{Field: viewmodel.SortByName, Ascending: true},
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

// SetRecords replaces the record set, keeping the current sort and filter.
func (m *TableModel) SetRecords(records []model.Record) {
	m.records = records
	m.refresh()
}

// Resize updates the component size.
func (m *TableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-5, 3))
}

// Searching reports whether the filter input has focus, in which case the
// parent must not treat keys as global shortcuts.
func (m TableModel) Searching() bool { return m.searching }

// VisibleRecords returns the rows currently shown, after filter and sort.
// This is what an export writes.
func (m TableModel) VisibleRecords() []model.Record {
	return m.visible
}

// Update handles table keys.
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.searching && isKey {
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

	if isKey {
		switch keyMsg.String() {
		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "s":
			m.sort.Field = viewmodel.NextSortField(m.sort.Field)
			m.refresh()
			return m, nil
		case "o":
			m.sort.Ascending = !m.sort.Ascending
			m.refresh()
			return m, nil
		case "e":
			records := m.visible
			return m, func() tea.Msg {
				return ExportRequestMsg{Records: records}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refresh recomputes the visible rows from the filter and sort state.
func (m *TableModel) refresh() {
	filtered := viewmodel.FilterTable(m.records, m.searchInput.Value())
	m.visible = viewmodel.SortRecords(filtered, m.sort)

	rows := make([]table.Row, 0, len(m.visible))
	for _, r := range m.visible {
		rows = append(rows, table.Row{
			r.DisplayName(),
			r.DisplayCategory(),
			r.DisplayAddress(),
			r.DisplayResults(),
			r.DisplayDate(),
			r.DisplayOwner(),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// View renders the filter bar, table, and footer.
func (m TableModel) View() string {
	direction := "asc"
	if !m.sort.Ascending {
		direction = "desc"
	}

	var filterBar string
	if m.searching {
		filterBar = m.searchInput.View()
	} else if query := m.searchInput.Value(); query != "" {
		filterBar = m.theme.Muted.Render(fmt.Sprintf("filter: %q (/ to edit)", query))
	} else {
		filterBar = m.theme.Muted.Render("/ filter · s sort column · o order · e export CSV")
	}

	footer := m.theme.StatusBar.Render(fmt.Sprintf(
		"%d of %d records · sorted by %s (%s)",
		len(m.visible), len(m.records), m.sort.Field, direction))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		filterBar,
		m.table.View(),
		footer,
	)
}
