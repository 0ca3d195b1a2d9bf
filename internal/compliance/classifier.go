// Package compliance implements the classification and aggregation core of
// the dashboard: deriving a compliance status from a record's free-text
// inspection result, partitioning records into field-keyed groups, and
// summarizing per-category compliance rates.
//
// Every function in this package is pure: it takes records in, returns a
// result, and touches no ambient state. Callers may pass any permutation or
// subset of the dataset.
package compliance

import (
	"strings"

	"github.com/platewatch/platewatch/internal/model"
)

// Classify derives a compliance status from a record's inspection result.
// Matching is ordered and first-match-wins; the order is a deliberate
// priority, not incidental.
//
// Any unrecognized, missing, or placeholder result (the dataset uses
// "------") is treated as Compliant. That optimistic fallback is a product
// decision, not an oversight: a result merely containing "compliant"
// reaches the same default branch rather than a dedicated rule.
func Classify(r model.Record) model.Status {
	result := strings.ToLower(r.InspectionResults)

	switch {
	case strings.Contains(result, "violations"),
		strings.Contains(result, "non-compliant"):
		return model.StatusViolations
	case strings.Contains(result, "compliance schedule"):
		return model.StatusComplianceSchedule
	case strings.Contains(result, "facility closed"):
		return model.StatusFacilityClosed
	case strings.Contains(result, "facility opened"),
		strings.Contains(result, "reopened"):
		return model.StatusFacilityReopened
	default:
		return model.StatusCompliant
	}
}
