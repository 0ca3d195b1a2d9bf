package compliance

import (
	"fmt"
	"sort"

	"github.com/platewatch/platewatch/internal/model"
)

// MinCategorySupport is the minimum number of inspections a category needs
// before it appears in rate summaries. Smaller categories produce noisy
// rates, so they are dropped rather than shown.
const MinCategorySupport = 10

// TopCategories caps how many categories a summary returns.
const TopCategories = 10

// Summary holds the overall compliance picture for a record set.
type Summary struct {
	Tally Tally
	// ComplianceRate is the percentage of compliant results among records
	// that classified as either Compliant or Non-Compliant/Violations.
	// The in-between statuses (schedule, closed, reopened) don't count
	// toward the rate in either direction.
	ComplianceRate float64
	// UniqueCities is the number of distinct municipalities served,
	// ignoring empty and placeholder values.
	UniqueCities int
}

// RateLabel formats the compliance rate to one decimal place.
func (s Summary) RateLabel() string {
	return fmt.Sprintf("%.1f%%", s.ComplianceRate)
}

// Summarize computes the overall status tally, compliance rate, and
// unique-city count for a record set.
func Summarize(records []model.Record) Summary {
	tally := NewTally()
	cities := make(map[string]struct{})

	for _, record := range records {
		tally.Add(Classify(record))
		if city := record.City; city != "" && city != "------" {
			cities[city] = struct{}{}
		}
	}

	summary := Summary{Tally: tally, UniqueCities: len(cities)}

	counted := tally.ByStatus[model.StatusCompliant] + tally.ByStatus[model.StatusViolations]
	if counted > 0 {
		summary.ComplianceRate = 100 * float64(tally.ByStatus[model.StatusCompliant]) / float64(counted)
	}
	return summary
}

// CategoryStat holds the compliance breakdown for one business category.
type CategoryStat struct {
	Category string
	Tally    Tally
}

// Percent returns the share of the category's inspections with status s.
func (c CategoryStat) Percent(s model.Status) float64 {
	return c.Tally.Percent(s)
}

// SummarizeByCategory tallies statuses per business category and returns
// the categories with at least MinCategorySupport inspections, sorted by
// volume descending and truncated to TopCategories. The consuming chart
// renders exactly this slice, so the ordering and cutoff are part of the
// contract.
func SummarizeByCategory(records []model.Record) []CategoryStat {
	grouping := GroupBy(records, []string{"category"})

	stats := make([]CategoryStat, 0, grouping.Len())
	for _, group := range grouping.Groups() {
		if group.Tally.Total < MinCategorySupport {
			continue
		}
		stats = append(stats, CategoryStat{Category: group.Key, Tally: group.Tally})
	}

	// Stable sort keeps first-occurrence order for equal volumes, so the
	// result is deterministic for identical input.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Tally.Total > stats[j].Tally.Total
	})

	if len(stats) > TopCategories {
		stats = stats[:TopCategories]
	}
	return stats
}

// RateBand buckets a compliance rate for display coloring.
type RateBand int

// Rate bands, split at 70% and 50%.
const (
	BandLow RateBand = iota
	BandMid
	BandHigh
)

// BandFor returns the display band for a percentage rate.
func BandFor(rate float64) RateBand {
	switch {
	case rate >= 70:
		return BandHigh
	case rate >= 50:
		return BandMid
	default:
		return BandLow
	}
}
