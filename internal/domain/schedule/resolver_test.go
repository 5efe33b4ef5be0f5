package schedule

import (
	"testing"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegion(t *testing.T) timezone.Region {
	t.Helper()
	region, err := timezone.NewRegion("+04:00")
	require.NoError(t, err)
	return region
}

func clockAt(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func weekdaySchedule() WorkSchedule {
	days := make([]ScheduleDay, 0, 7)
	for wd := 1; wd <= 7; wd++ {
		days = append(days, ScheduleDay{
			Weekday:      wd,
			IsWorking:    wd <= 5,
			ClockInTime:  clockAt(9, 0),
			ClockOutTime: clockAt(18, 0),
		})
	}
	return WorkSchedule{ID: "sched-1", Name: "Standard", Days: days}
}

func TestResolveDay_WorkingDay(t *testing.T) {
	region := testRegion(t)

	// 2024-03-15 is a Friday.
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, region.Location())
	resolved, err := ResolveDay(weekdaySchedule(), date, region)
	require.NoError(t, err)

	assert.True(t, resolved.IsWorkingDay)
	assert.Equal(t, 9, resolved.ExpectedClockIn.Hour())
	assert.Equal(t, 18, resolved.ExpectedClockOut.Hour())
	assert.Equal(t, 15, resolved.ExpectedClockIn.Day())
}

func TestResolveDay_NonWorkingDay(t *testing.T) {
	region := testRegion(t)

	// 2024-03-16 is a Saturday.
	date := time.Date(2024, 3, 16, 0, 0, 0, 0, region.Location())
	resolved, err := ResolveDay(weekdaySchedule(), date, region)
	require.NoError(t, err)

	assert.False(t, resolved.IsWorkingDay)
	assert.True(t, resolved.ExpectedClockIn.IsZero())
	assert.True(t, resolved.ExpectedClockOut.IsZero())
}

func TestResolveDay_MissingWeekdayTreatedAsNonWorking(t *testing.T) {
	region := testRegion(t)

	ws := WorkSchedule{Days: []ScheduleDay{{
		Weekday:      1,
		IsWorking:    true,
		ClockInTime:  clockAt(9, 0),
		ClockOutTime: clockAt(18, 0),
	}}}

	// 2024-03-19 is a Tuesday; the schedule only defines Monday.
	date := time.Date(2024, 3, 19, 0, 0, 0, 0, region.Location())
	resolved, err := ResolveDay(ws, date, region)
	require.NoError(t, err)
	assert.False(t, resolved.IsWorkingDay)
}

func TestResolveDay_MalformedSchedule(t *testing.T) {
	region := testRegion(t)

	ws := weekdaySchedule()
	for i := range ws.Days {
		ws.Days[i].ClockInTime = clockAt(18, 0)
		ws.Days[i].ClockOutTime = clockAt(9, 0)
	}

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, region.Location())
	_, err := ResolveDay(ws, date, region)
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, 1, ISOWeekday(time.Monday))
	assert.Equal(t, 5, ISOWeekday(time.Friday))
	assert.Equal(t, 6, ISOWeekday(time.Saturday))
	assert.Equal(t, 7, ISOWeekday(time.Sunday))
}
