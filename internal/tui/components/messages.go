package components

import "github.com/platewatch/platewatch/internal/model"

// ExportRequestMsg asks the parent to export the given records as CSV.
type ExportRequestMsg struct {
	Records []model.Record
}

// ExportResultMsg reports the outcome of a CSV export.
type ExportResultMsg struct {
	Err   error
	Path  string
	Count int
}
