// Package export writes the currently visible records as CSV.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/platewatch/platewatch/internal/model"
)

// Header is the fixed CSV column order.
var Header = []string{"name", "date", "result", "location", "category"}

// WriteCSV writes one row per record in the given order, preceded by the
// header. Every value is double-quoted with embedded quotes doubled, which
// matches what downstream spreadsheet imports expect from this dataset.
func WriteCSV(w io.Writer, records []model.Record) error {
	if _, err := fmt.Fprintln(w, strings.Join(Header, ",")); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.DisplayName(),
			r.DisplayDate(),
			r.DisplayResults(),
			r.DisplayAddress(),
			r.DisplayCategory(),
		}
		for i, v := range row {
			row[i] = quote(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
