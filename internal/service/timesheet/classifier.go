package timesheet

import (
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
)

// Classify derives the classification for one attendance day. It is a pure
// function: deterministic, no I/O, and safe to call repeatedly with the same
// inputs.
//
// An approved leave covering the date wins over everything else, including an
// approved exception on the same date. An approved exception substitutes its
// proposed instants for exactly the times its type corrects before the
// lateness and hours rules run.
func Classify(day attendance.Day, resolved schedule.ResolvedDay, exceptions []exception.Request, leaves []leave.Request, cfg Config) DayClassification {
	eff := ApplyOverlay(day, exceptions, leaves)

	out := DayClassification{Date: day.Date}

	if eff.Leave != nil {
		out.Status = StatusLeave
		return out
	}

	if !resolved.IsWorkingDay {
		out.Status = StatusNonWorking
		return out
	}

	if eff.Day.ClockIn == nil {
		out.Status = StatusAbsent
		return out
	}

	out.LatenessMinutes = positiveMinutes(eff.Day.ClockIn.Sub(resolved.ExpectedClockIn))

	if eff.Day.ClockOut != nil {
		out.EarlinessMinutes = positiveMinutes(resolved.ExpectedClockOut.Sub(*eff.Day.ClockOut))

		workedMinutes := positiveMinutes(eff.Day.ClockOut.Sub(*eff.Day.ClockIn))
		if cfg.BreakDeductionMinutes > 0 && workedMinutes > cfg.BreakThresholdMinutes {
			workedMinutes -= cfg.BreakDeductionMinutes
			if workedMinutes < 0 {
				workedMinutes = 0
			}
		}
		hours := float64(workedMinutes) / 60.0
		out.TotalHours = &hours
	}

	if out.LatenessMinutes > 0 {
		out.Status = StatusLate
	} else {
		out.Status = StatusPresent
	}

	return out
}

// positiveMinutes floors the duration to whole minutes, clamped at zero.
func positiveMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Minutes())
}
