package timesheet

import (
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
)

// EffectiveDay is the attendance day after approved exceptions and leaves
// have been overlaid. Day is a fresh snapshot; the inputs are never mutated.
type EffectiveDay struct {
	Day       attendance.Day
	Exception *exception.Request
	Leave     *leave.Request
}

// ApplyOverlay selects at most one approved exception and one approved leave
// for the day's date and substitutes the exception's proposed instants for
// exactly the times its type corrects. When several approved records compete
// for the same date, the most recently approved one wins.
func ApplyOverlay(day attendance.Day, exceptions []exception.Request, leaves []leave.Request) EffectiveDay {
	eff := EffectiveDay{Day: day}

	for i := range exceptions {
		exc := &exceptions[i]
		if exc.Status != exception.StatusApproved {
			continue
		}
		if !sameDate(exc.Date, day.Date) {
			continue
		}
		if eff.Exception == nil || approvedAfter(exc.DecidedAt, eff.Exception.DecidedAt) {
			eff.Exception = exc
		}
	}

	for i := range leaves {
		lv := &leaves[i]
		if lv.Status != leave.StatusApproved {
			continue
		}
		if !lv.Covers(day.Date) {
			continue
		}
		if eff.Leave == nil || approvedAfter(lv.DecidedAt, eff.Leave.DecidedAt) {
			eff.Leave = lv
		}
	}

	if eff.Exception != nil {
		if eff.Exception.Type.CorrectsClockIn() && eff.Exception.ProposedClockIn != nil {
			in := *eff.Exception.ProposedClockIn
			eff.Day.ClockIn = &in
		}
		if eff.Exception.Type.CorrectsClockOut() && eff.Exception.ProposedClockOut != nil {
			out := *eff.Exception.ProposedClockOut
			eff.Day.ClockOut = &out
		}
	}

	return eff
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// approvedAfter reports whether a was decided strictly after b. A nil
// decision time loses to any concrete one.
func approvedAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
