package compliance

import (
	"testing"

	"github.com/platewatch/platewatch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		results string
		want    model.Status
	}{
		{
			name:    "violations issued",
			results: "Violations Issued",
			want:    model.StatusViolations,
		},
		{
			name:    "explicit non-compliant",
			results: "Non-Compliant",
			want:    model.StatusViolations,
		},
		{
			name:    "compliant with no health risk",
			results: "Compliant - No Health Risk",
			want:    model.StatusCompliant,
		},
		{
			name:    "placeholder dashes",
			results: "------",
			want:    model.StatusCompliant,
		},
		{
			name:    "facility closed",
			results: "Facility Closed by DHMH",
			want:    model.StatusFacilityClosed,
		},
		{
			name:    "facility opened",
			results: "Facility Opened",
			want:    model.StatusFacilityReopened,
		},
		{
			name:    "facility reopened",
			results: "Facility Reopened after inspection",
			want:    model.StatusFacilityReopened,
		},
		{
			name:    "compliance schedule",
			results: "Compliance Schedule Issued",
			want:    model.StatusComplianceSchedule,
		},
		{
			name:    "empty result",
			results: "",
			want:    model.StatusCompliant,
		},
		{
			name:    "unrecognized text falls back to compliant",
			results: "Inspection pending review",
			want:    model.StatusCompliant,
		},
		{
			name:    "bare compliant reaches the default branch",
			results: "compliant",
			want:    model.StatusCompliant,
		},
		{
			name:    "matching is case-insensitive",
			results: "VIOLATIONS CORRECTED ON SITE",
			want:    model.StatusViolations,
		},
		{
			name:    "violations outranks facility closed",
			results: "Non-Compliant - Facility Closed",
			want:    model.StatusViolations,
		},
		{
			name:    "closed outranks reopened",
			results: "Facility Closed, later reopened",
			want:    model.StatusFacilityClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(model.Record{InspectionResults: tt.results})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyEmptyRecord(t *testing.T) {
	assert.Equal(t, model.StatusCompliant, Classify(model.Record{}))
}

// Classify must return exactly one of the enumerated statuses for any
// input, including garbage.
func TestClassifyIsTotal(t *testing.T) {
	valid := make(map[model.Status]bool)
	for _, s := range model.AllStatuses() {
		valid[s] = true
	}

	inputs := []string{
		"", " ", "------", "\x00\xff", "Compliant", "violations",
		"CLOSED", "schedule", "no health risk", "facility",
	}
	for _, in := range inputs {
		got := Classify(model.Record{InspectionResults: in})
		assert.True(t, valid[got], "input %q classified as %q", in, got)
	}
}
