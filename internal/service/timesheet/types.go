package timesheet

import "time"

// Status is the outcome of classifying a single attendance day.
type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusAbsent     Status = "absent"
	StatusLeave      Status = "leave"
	StatusNonWorking Status = "non_working"
)

// Config carries the classification knobs that used to live in ambient
// settings. A zero Config means no break deduction.
type Config struct {
	// BreakDeductionMinutes is subtracted from a completed day's worked time
	// once the day exceeds BreakThresholdMinutes.
	BreakDeductionMinutes int
	BreakThresholdMinutes int
}

// DayClassification is the derived, never-persisted result for one day.
// TotalHours is nil while the day is still open (clock-out missing) and for
// absent, leave, and non-working days.
type DayClassification struct {
	Date             time.Time
	Status           Status
	LatenessMinutes  int
	EarlinessMinutes int
	TotalHours       *float64
}

// DayResult pairs a day's classification with its per-day failure, if any.
// A failed day never aborts the surrounding month.
type DayResult struct {
	Date           time.Time
	Classification DayClassification
	Err            error
}

// WeekSummary covers one ISO week (Monday start). Start and End always span
// the full week even when it crosses a month boundary; only days inside the
// requested month contribute to the totals.
type WeekSummary struct {
	Year            int
	Week            int
	Start           time.Time
	End             time.Time
	TotalHours      float64
	DaysWorked      int
	LatenessMinutes int
}

type MonthSummary struct {
	Year               int
	Month              time.Month
	TotalHours         float64
	DaysWorked         int
	DaysLate           int
	DaysAbsent         int
	DaysLeave          int
	AverageHoursPerDay float64
	LatenessMinutes    int
	EarlinessMinutes   int
}
