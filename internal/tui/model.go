// Package tui implements the terminal dashboard: four interchangeable
// views over the inspection dataset, backed by the pure classification and
// aggregation core.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/platewatch/platewatch/internal/tui/components"
)

// View identifies one of the four dashboard views.
type View int

// Dashboard views, in Tab-cycle order.
const (
	ViewCards View = iota
	ViewTable
	ViewCategories
	ViewStats
)

func (v View) String() string {
	switch v {
	case ViewCards:
		return "Cards"
	case ViewTable:
		return "Table"
	case ViewCategories:
		return "Categories"
	case ViewStats:
		return "Stats"
	default:
		return "Unknown"
	}
}

const viewCount = 4

// Model holds the main dashboard state. All record data is immutable after
// construction; the model only owns view state (current view, page, sort,
// filter), which lives in the per-view components.
type Model struct {
	config     Config
	keymap     KeyMap
	cards      components.CardsModel
	table      components.TableModel
	categories components.CategoriesModel
	stats      components.StatsModel
	statusMsg  string
	view       View
	width      int
	height     int
	showHelp   bool
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	return Model{
		config:     cfg,
		keymap:     DefaultKeyMap(),
		cards:      components.NewCardsModel(cfg.Records, cfg.Theme, cfg.PageSize),
		table:      components.NewTableModel(cfg.Records, cfg.Theme),
		categories: components.NewCategoriesModel(cfg.Records, cfg.Theme),
		stats:      components.NewStatsModel(cfg.Records, cfg.Theme),
		view:       ViewCards,
		width:      cfg.Width,
		height:     cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Force quit always wins, even mid-search.
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		if !m.capturingInput() {
			if cmd, handled := m.handleGlobalKey(msg); handled {
				return m, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case components.ExportRequestMsg:
		return m, exportCmd(msg.Records, m.config.ExportDir)

	case components.ExportResultMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("export failed: %v", msg.Err)
		} else {
			m.statusMsg = fmt.Sprintf("exported %d rows to %s", msg.Count, msg.Path)
		}
		return m, nil
	}

	return m.updateActiveView(msg)
}

// capturingInput reports whether the active view owns the keyboard, e.g.
// while a search input is focused.
func (m Model) capturingInput() bool {
	switch m.view {
	case ViewTable:
		return m.table.Searching()
	case ViewCategories:
		return m.categories.Searching()
	default:
		return false
	}
}

// handleGlobalKey handles keys that apply in every view.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.showHelp {
			m.showHelp = false
			return nil, true
		}
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil, true

	case key.Matches(msg, m.keymap.CycleView):
		m.switchView(View((int(m.view) + 1) % viewCount))
		return nil, true

	case key.Matches(msg, m.keymap.ViewCards):
		m.switchView(ViewCards)
		return nil, true

	case key.Matches(msg, m.keymap.ViewTable):
		m.switchView(ViewTable)
		return nil, true

	case key.Matches(msg, m.keymap.ViewCategories):
		m.switchView(ViewCategories)
		return nil, true

	case key.Matches(msg, m.keymap.ViewStats):
		m.switchView(ViewStats)
		return nil, true
	}

	return nil, false
}

// switchView changes the active view. Switching away from the card view
// resets its page so the next visit starts at the beginning.
func (m *Model) switchView(v View) {
	if m.view == ViewCards && v != ViewCards {
		m.cards.SetRecords(m.config.Records)
	}
	m.view = v
	m.statusMsg = ""
}

// updateActiveView delegates a message to the active view's component.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewCards:
		m.cards, cmd = m.cards.Update(msg)
	case ViewTable:
		m.table, cmd = m.table.Update(msg)
	case ViewCategories:
		m.categories, cmd = m.categories.Update(msg)
	case ViewStats:
		m.stats, cmd = m.stats.Update(msg)
	}
	return m, cmd
}

// handleResize propagates the new size to every component.
func (m *Model) handleResize() {
	contentHeight := max(m.height-4, 5) // tabs + status bar
	m.cards.Resize(m.width, contentHeight)
	m.table.Resize(m.width, contentHeight)
	m.categories.Resize(m.width, contentHeight)
	m.stats.Resize(m.width, contentHeight)
}
