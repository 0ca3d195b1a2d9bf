// Package components holds the four dashboard views and their shared
// rendering helpers.
package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/tui/themes"
	"github.com/platewatch/platewatch/internal/tui/viewmodel"
)

const (
	cardWidth      = 40
	addressDisplay = 30
)

// CardsModel renders the paginated card grid.
type CardsModel struct {
	theme   themes.Theme
	records []model.Record
	page    int
	perPage int
	width   int
	height  int
}

// NewCardsModel creates the card grid over the full record set.
func NewCardsModel(records []model.Record, theme themes.Theme, perPage int) CardsModel {
	if perPage <= 0 {
		perPage = viewmodel.DefaultPageSize
	}
	return CardsModel{
		theme:   theme,
		records: records,
		page:    1,
		perPage: perPage,
		width:   80,
		height:  24,
	}
}

// SetRecords replaces the record set and resets to the first page.
func (m *CardsModel) SetRecords(records []model.Record) {
	m.records = records
	m.page = 1
}

// Resize updates the component size.
func (m *CardsModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles pagination keys.
func (m CardsModel) Update(msg tea.Msg) (CardsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	_, _, totalPages := viewmodel.PageSlice(len(m.records), m.perPage, m.page)

	switch keyMsg.String() {
	case "right", "l", "n":
		m.page = viewmodel.ClampPage(m.page+1, totalPages)
	case "left", "h", "p":
		m.page = viewmodel.ClampPage(m.page-1, totalPages)
	case "home", "g":
		m.page = 1
	case "end", "G":
		m.page = viewmodel.ClampPage(totalPages, totalPages)
	}

	return m, nil
}

// View renders the current page of cards plus the pagination controls.
func (m CardsModel) View() string {
	if len(m.records) == 0 {
		return m.theme.Muted.Render("No inspection records to show.")
	}

	start, end, totalPages := viewmodel.PageSlice(len(m.records), m.perPage, m.page)
	pageRecords := m.records[start:end]

	columns := m.width / (cardWidth + 2)
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for rowStart := 0; rowStart < len(pageRecords); rowStart += columns {
		rowEnd := min(rowStart+columns, len(pageRecords))
		cards := make([]string, 0, columns)
		for _, record := range pageRecords[rowStart:rowEnd] {
			cards = append(cards, m.renderCard(record))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	sections := []string{lipgloss.JoinVertical(lipgloss.Left, rows...)}
	if pagination := renderPagination(m.theme, m.page, totalPages); pagination != "" {
		footer := fmt.Sprintf("%s  %s",
			pagination,
			m.theme.Muted.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.records))))
		sections = append(sections, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CardsModel) renderCard(record model.Record) string {
	status := compliance.Classify(record)
	resultLine := m.theme.StatusStyle(status).Render(truncate(record.DisplayResults(), cardWidth-10))

	lines := []string{
		m.theme.Bold.Render(truncate(record.DisplayName(), cardWidth-4)),
		fmt.Sprintf("Category: %s", truncate(record.DisplayCategory(), cardWidth-14)),
		fmt.Sprintf("Address:  %s", truncate(record.DisplayAddress(), addressDisplay)),
		fmt.Sprintf("Date:     %s", record.DisplayDate()),
		fmt.Sprintf("Results:  %s", resultLine),
		fmt.Sprintf("Owner:    %s", truncate(record.DisplayOwner(), cardWidth-14)),
	}
	if url := record.MapURL(); url != "" {
		lines = append(lines, m.theme.Muted.Render(truncate(url, cardWidth-4)))
	}

	return m.theme.RoundedBox.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}
