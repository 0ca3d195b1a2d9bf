package viewmodel

import (
	"sort"
	"strconv"
	"strings"

	"github.com/platewatch/platewatch/internal/model"
)

// SortField identifies a sortable table column.
type SortField string

// Sortable fields, in the order the table cycles through them.
const (
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
	SortByResult   SortField = "result"
	SortByDate     SortField = "date"
)

// SortFields returns the sortable fields in cycle order.
func SortFields() []SortField {
	return []SortField{SortByName, SortByCategory, SortByResult, SortByDate}
}

// NextSortField returns the field after f in the cycle.
func NextSortField(f SortField) SortField {
	fields := SortFields()
	for i, candidate := range fields {
		if candidate == f {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}

// SortConfig holds the current sort state of the table view.
type SortConfig struct {
	Field     SortField
	Ascending bool
}

// SortRecords returns a sorted copy of records; the input is left alone so
// callers can keep the original fetch order. Values that both parse as
// numbers compare numerically, everything else compares as strings, the
// same way the table column sort behaves.
func SortRecords(records []model.Record, cfg SortConfig) []model.Record {
	sorted := make([]model.Record, len(records))
	copy(sorted, records)

	key := func(r model.Record) string {
		switch cfg.Field {
		case SortByCategory:
			return r.DisplayCategory()
		case SortByResult:
			return r.DisplayResults()
		case SortByDate:
			return r.DisplayDate()
		default:
			return r.DisplayName()
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := key(sorted[i]), key(sorted[j])
		if !cfg.Ascending {
			a, b = b, a
		}
		return lessValue(a, b)
	})
	return sorted
}

func lessValue(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return strings.Compare(a, b) < 0
}
