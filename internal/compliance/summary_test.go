package compliance

import (
	"fmt"
	"testing"

	"github.com/platewatch/platewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []model.Record{
		{City: "Bowie", InspectionResults: "Compliant - No Health Risk"},
		{City: "Bowie", InspectionResults: "Compliant - No Health Risk"},
		{City: "Laurel", InspectionResults: "Violations Issued"},
		{City: "------", InspectionResults: "Compliance Schedule"},
		{InspectionResults: "Facility Closed"},
	}

	summary := Summarize(records)

	assert.Equal(t, 5, summary.Tally.Total)
	assert.Equal(t, 2, summary.Tally.ByStatus[model.StatusCompliant])
	assert.Equal(t, 1, summary.Tally.ByStatus[model.StatusViolations])
	assert.Equal(t, 1, summary.Tally.ByStatus[model.StatusComplianceSchedule])
	assert.Equal(t, 1, summary.Tally.ByStatus[model.StatusFacilityClosed])

	// Rate counts compliant vs violations only: 2 of 3.
	assert.InDelta(t, 66.666, summary.ComplianceRate, 0.01)
	assert.Equal(t, "66.7%", summary.RateLabel())

	// Placeholder and empty cities don't count.
	assert.Equal(t, 2, summary.UniqueCities)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Tally.Total)
	assert.Equal(t, 0.0, summary.ComplianceRate)
	assert.Equal(t, "0.0%", summary.RateLabel())
	assert.Equal(t, 0, summary.UniqueCities)
}

// categoryRecords builds n records in a category, alternating compliant
// and violation results.
func categoryRecords(category string, n int) []model.Record {
	records := make([]model.Record, 0, n)
	for i := 0; i < n; i++ {
		result := "Compliant - No Health Risk"
		if i%2 == 0 {
			result = "Violations Issued"
		}
		records = append(records, model.Record{Category: category, InspectionResults: result})
	}
	return records
}

func TestSummarizeByCategorySupportAndOrder(t *testing.T) {
	var records []model.Record
	records = append(records, categoryRecords("Bakery", 12)...)
	records = append(records, categoryRecords("Restaurant", 20)...)
	records = append(records, categoryRecords("Food Truck", 5)...)
	records = append(records, categoryRecords("Deli", 12)...)

	stats := SummarizeByCategory(records)

	require.Len(t, stats, 3)
	assert.Equal(t, "Restaurant", stats[0].Category)
	// Equal volumes keep first-occurrence order.
	assert.Equal(t, "Bakery", stats[1].Category)
	assert.Equal(t, "Deli", stats[2].Category)

	for _, stat := range stats {
		assert.GreaterOrEqual(t, stat.Tally.Total, MinCategorySupport)
	}
	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].Tally.Total, stats[i].Tally.Total)
	}
}

func TestSummarizeByCategoryTruncates(t *testing.T) {
	var records []model.Record
	for i := 0; i < 14; i++ {
		records = append(records, categoryRecords(fmt.Sprintf("Category %02d", i), 10+i)...)
	}

	stats := SummarizeByCategory(records)

	require.Len(t, stats, TopCategories)
	assert.Equal(t, "Category 13", stats[0].Category)
}

func TestSummarizeByCategoryPercents(t *testing.T) {
	records := append(categoryRecords("Bakery", 10), model.Record{
		Category:          "Bakery",
		InspectionResults: "Facility Closed",
	})

	stats := SummarizeByCategory(records)
	require.Len(t, stats, 1)

	stat := stats[0]
	assert.Equal(t, 11, stat.Tally.Total)
	assert.InDelta(t, 100*5.0/11.0, stat.Percent(model.StatusCompliant), 0.001)
	assert.InDelta(t, 100*5.0/11.0, stat.Percent(model.StatusViolations), 0.001)
	assert.InDelta(t, 100*1.0/11.0, stat.Percent(model.StatusFacilityClosed), 0.001)
}

func TestSummarizeByCategoryDeterministic(t *testing.T) {
	var records []model.Record
	records = append(records, categoryRecords("Bakery", 12)...)
	records = append(records, categoryRecords("Deli", 12)...)

	first := SummarizeByCategory(records)
	second := SummarizeByCategory(records)
	assert.Equal(t, first, second)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandHigh, BandFor(100))
	assert.Equal(t, BandHigh, BandFor(70))
	assert.Equal(t, BandMid, BandFor(69.9))
	assert.Equal(t, BandMid, BandFor(50))
	assert.Equal(t, BandLow, BandFor(49.9))
	assert.Equal(t, BandLow, BandFor(0))
}
