package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// View selection
	CycleView      key.Binding
	ViewCards      key.Binding
	ViewTable      key.Binding
	ViewCategories key.Binding
	ViewStats      key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "cycle views"),
		),
		ViewCards: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "card view"),
		),
		ViewTable: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "table view"),
		),
		ViewCategories: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "category view"),
		),
		ViewStats: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "stats view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleView, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewCards, k.ViewTable, k.ViewCategories, k.ViewStats},
		{k.CycleView, k.Help, k.Quit},
	}
}
