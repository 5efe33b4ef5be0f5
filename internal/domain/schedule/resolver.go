package schedule

import (
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

// ResolveDay determines the attendance expectation for one calendar date
// under a schedule. Pure function of its inputs: the expected instants are
// the schedule's time-of-day values placed on the date in the regional zone.
func ResolveDay(ws WorkSchedule, date time.Time, region timezone.Region) (ResolvedDay, error) {
	weekday := ISOWeekday(date.Weekday())

	var day *ScheduleDay
	for i := range ws.Days {
		if ws.Days[i].Weekday == weekday {
			day = &ws.Days[i]
			break
		}
	}

	if day == nil || !day.IsWorking {
		return ResolvedDay{IsWorkingDay: false}, nil
	}

	expectedIn := region.At(date, day.ClockInTime)
	expectedOut := region.At(date, day.ClockOutTime)

	if !expectedOut.After(expectedIn) {
		return ResolvedDay{}, ErrMalformedSchedule
	}

	return ResolvedDay{
		IsWorkingDay:     true,
		ExpectedClockIn:  expectedIn,
		ExpectedClockOut: expectedOut,
	}, nil
}
