package model

// Status is the compliance status derived from a record's free-text
// inspection result.
type Status string

const (
	// StatusCompliant is the optimistic default: explicit compliant
	// results, placeholder values, and anything unrecognized.
	StatusCompliant Status = "Compliant"
	// StatusViolations covers results mentioning violations or
	// non-compliance.
	StatusViolations Status = "Non-Compliant/Violations"
	// StatusComplianceSchedule covers facilities on a compliance schedule.
	StatusComplianceSchedule Status = "Compliance Schedule"
	// StatusFacilityClosed covers facilities closed by the health
	// department.
	StatusFacilityClosed Status = "Facility Closed"
	// StatusFacilityReopened covers facilities reopened after a closure.
	StatusFacilityReopened Status = "Facility Reopened"
)

// AllStatuses returns every status in display order.
func AllStatuses() []Status {
	return []Status{
		StatusCompliant,
		StatusViolations,
		StatusComplianceSchedule,
		StatusFacilityClosed,
		StatusFacilityReopened,
	}
}
