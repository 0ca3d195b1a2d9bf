package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/platewatch/platewatch/internal/export"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/tui/components"
)

// exportCmd writes the visible records to a timestamped CSV file in dir
// (or the working directory) off the UI loop.
func exportCmd(records []model.Record, dir string) tea.Cmd {
	return func() tea.Msg {
		name := fmt.Sprintf("inspections-%s.csv", time.Now().Format("20060102-150405"))
		path := filepath.Join(dir, name)

		f, err := os.Create(path)
		if err != nil {
			return components.ExportResultMsg{Err: fmt.Errorf("failed to create export file: %w", err)}
		}
		defer func() { _ = f.Close() }()

		if err := export.WriteCSV(f, records); err != nil {
			return components.ExportResultMsg{Err: err}
		}

		return components.ExportResultMsg{Path: path, Count: len(records)}
	}
}
