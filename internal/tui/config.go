package tui

import (
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/service"
	"github.com/platewatch/platewatch/internal/tui/themes"
	"github.com/platewatch/platewatch/internal/tui/viewmodel"
)

// Config holds dashboard configuration.
type Config struct {
	Theme     themes.Theme
	Records   []model.Record
	Dataset   *service.DatasetInfo
	ExportDir string
	PageSize  int
	Width     int
	Height    int
}

// Option is a functional option for configuring the dashboard.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		PageSize: viewmodel.DefaultPageSize,
		Width:    80,
		Height:   24,
	}
}

// WithRecords sets the dataset to render.
func WithRecords(records []model.Record) Option {
	return func(c *Config) {
		c.Records = records
	}
}

// WithDatasetInfo sets the dataset provenance shown in the status bar.
func WithDatasetInfo(info *service.DatasetInfo) Option {
	return func(c *Config) {
		c.Dataset = info
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPageSize sets how many cards a page shows.
func WithPageSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.PageSize = size
		}
	}
}

// WithExportDir sets where CSV exports land.
func WithExportDir(dir string) Option {
	return func(c *Config) {
		c.ExportDir = dir
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
