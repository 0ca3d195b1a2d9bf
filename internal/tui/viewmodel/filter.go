package viewmodel

import (
	"sort"
	"strings"

	"github.com/platewatch/platewatch/internal/model"
)

// AllCategories is the category filter value meaning "no filter".
const AllCategories = "all"

// FilterTable returns the records whose name or category contains the
// query, case-insensitively. An empty query keeps everything.
func FilterTable(records []model.Record, query string) []model.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	var filtered []model.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Category), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterGroups returns the records matching a free-text search over name,
// city, and address, and an exact category filter. AllCategories (or empty)
// disables the category filter.
func FilterGroups(records []model.Record, query, category string) []model.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	filterCategory := category != "" && category != AllCategories

	var filtered []model.Record
	for _, r := range records {
		if filterCategory && r.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.City), query) &&
			!strings.Contains(strings.ToLower(r.AddressLine1), query) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// UniqueCategories returns the distinct non-empty categories, sorted.
func UniqueCategories(records []model.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Category != "" {
			seen[r.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
