package compliance

import (
	"testing"

	"github.com/platewatch/platewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []model.Record {
	return []model.Record{
		{Name: "Rise & Shine", Category: "Bakery", City: "Bowie", InspectionResults: "violations noted"},
		{Name: "Crusty's", Category: "Bakery", City: "Bowie", InspectionResults: "Compliant - No Health Risk"},
		{Name: "Taco Villa", Category: "Restaurant", City: "Laurel", InspectionResults: "Compliance Schedule"},
		{Name: "No Town Deli", Category: "Deli", InspectionResults: "------"},
		{Name: "Night Owl", Category: "Restaurant", City: "Bowie", InspectionResults: "Facility Closed"},
	}
}

func TestGroupByPartition(t *testing.T) {
	records := testRecords()

	for _, fields := range [][]string{
		{"category"},
		{"category", "city"},
		{"city"},
		{"owner"},
		{},
	} {
		grouping := GroupBy(records, fields)

		total := 0
		for _, group := range grouping.Groups() {
			total += len(group.Items)
			assert.Equal(t, group.Tally.Total, len(group.Items))
		}
		assert.Equal(t, len(records), total, "fields %v must partition the input", fields)
	}
}

func TestGroupByKeyConstruction(t *testing.T) {
	grouping := GroupBy(testRecords(), []string{"category", "city"})

	assert.Equal(t, []string{
		"Bakery | Bowie",
		"Restaurant | Laurel",
		"Deli | Unknown",
		"Restaurant | Bowie",
	}, grouping.Keys())

	bakery, ok := grouping.Group("Bakery | Bowie")
	require.True(t, ok)
	assert.Len(t, bakery.Items, 2)
	assert.Equal(t, "Rise & Shine", bakery.Items[0].Name)
	assert.Equal(t, "Crusty's", bakery.Items[1].Name)
}

func TestGroupByTallies(t *testing.T) {
	records := []model.Record{
		{Category: "Bakery", InspectionResults: "violations noted"},
		{Category: "Bakery", InspectionResults: "Compliant - No Health Risk"},
	}

	grouping := GroupBy(records, []string{"category"})
	require.Equal(t, 1, grouping.Len())

	group, ok := grouping.Group("Bakery")
	require.True(t, ok)
	assert.Equal(t, 2, group.Tally.Total)
	assert.Equal(t, 1, group.Tally.ByStatus[model.StatusViolations])
	assert.Equal(t, 1, group.Tally.ByStatus[model.StatusCompliant])
}

func TestGroupByEmptyInput(t *testing.T) {
	grouping := GroupBy(nil, []string{"category"})
	assert.Equal(t, 0, grouping.Len())
	assert.Empty(t, grouping.Keys())
}

func TestGroupByNoFields(t *testing.T) {
	records := testRecords()
	grouping := GroupBy(records, nil)

	require.Equal(t, 1, grouping.Len())
	group, ok := grouping.Group("")
	require.True(t, ok)
	assert.Len(t, group.Items, len(records))
}

func TestGroupByUnknownField(t *testing.T) {
	grouping := GroupBy(testRecords(), []string{"no_such_field"})

	require.Equal(t, 1, grouping.Len())
	group, ok := grouping.Group("Unknown")
	require.True(t, ok)
	assert.Len(t, group.Items, len(testRecords()))
}

func TestGroupByDeterministic(t *testing.T) {
	records := testRecords()

	first := GroupBy(records, []string{"category", "city"})
	second := GroupBy(records, []string{"category", "city"})

	assert.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		a, _ := first.Group(key)
		b, _ := second.Group(key)
		assert.Equal(t, a.Tally, b.Tally)
		assert.Equal(t, a.Items, b.Items)
	}
}

func TestTallyPercent(t *testing.T) {
	tally := NewTally()
	assert.Equal(t, 0.0, tally.Percent(model.StatusCompliant))

	tally.Add(model.StatusCompliant)
	tally.Add(model.StatusCompliant)
	tally.Add(model.StatusViolations)
	tally.Add(model.StatusFacilityClosed)

	assert.InDelta(t, 50.0, tally.Percent(model.StatusCompliant), 0.001)
	assert.InDelta(t, 25.0, tally.Percent(model.StatusViolations), 0.001)
	assert.InDelta(t, 0.0, tally.Percent(model.StatusFacilityReopened), 0.001)
}
