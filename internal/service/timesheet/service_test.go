package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

type fakeAttendanceRepo struct {
	attendance.Repository
	days []attendance.Day
}

func (f *fakeAttendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Day, error) {
	var out []attendance.Day
	for _, d := range f.days {
		if d.EmployeeID == employeeID && !d.Date.Before(from) && !d.Date.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	schedule.WorkScheduleRepository
	ws  schedule.WorkSchedule
	err error
}

func (f *fakeScheduleRepo) GetForEmployee(ctx context.Context, employeeID string, date time.Time) (schedule.WorkSchedule, error) {
	if f.err != nil {
		return schedule.WorkSchedule{}, f.err
	}
	return f.ws, nil
}

type fakeExceptionRepo struct {
	exception.Repository
	approved []exception.Request
}

func (f *fakeExceptionRepo) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]exception.Request, error) {
	return f.approved, nil
}

type fakeLeaveRepo struct {
	leave.Repository
	approved []leave.Request
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error) {
	return f.approved, nil
}

func clockAt(hour, min int) time.Time {
	return time.Date(2000, 1, 1, hour, min, 0, 0, time.UTC)
}

// weekdaysNineToSix is a Monday-to-Friday 09:00-18:00 schedule.
func weekdaysNineToSix() schedule.WorkSchedule {
	ws := schedule.WorkSchedule{ID: "ws-1", Name: "Standard", IsDefault: true}
	for wd := 1; wd <= 7; wd++ {
		day := schedule.ScheduleDay{Weekday: wd}
		if wd <= 5 {
			day.IsWorking = true
			day.ClockInTime = clockAt(9, 0)
			day.ClockOutTime = clockAt(18, 0)
		}
		ws.Days = append(ws.Days, day)
	}
	return ws
}

func newTestService(days []attendance.Day, excs []exception.Request, lvs []leave.Request) Service {
	region, _ := timezone.NewRegion("+04:00")
	return NewTimesheetService(
		&fakeAttendanceRepo{days: days},
		&fakeScheduleRepo{ws: weekdaysNineToSix()},
		&fakeExceptionRepo{approved: excs},
		&fakeLeaveRepo{approved: lvs},
		region,
		Config{},
	)
}

func TestMonthTimesheetPipeline(t *testing.T) {
	region, _ := timezone.NewRegion("+04:00")
	loc := region.Location()

	// Friday 2024-03-01: present 09:00-18:00. Monday 2024-03-04: late 09:20,
	// out 18:00. Everything else in March has no rows.
	in1 := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)
	out1 := time.Date(2024, 3, 1, 18, 0, 0, 0, loc)
	in2 := time.Date(2024, 3, 4, 9, 20, 0, 0, loc)
	out2 := time.Date(2024, 3, 4, 18, 0, 0, 0, loc)

	days := []attendance.Day{
		{ID: "a1", EmployeeID: "emp-1", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, loc), ClockIn: &in1, ClockOut: &out1},
		{ID: "a2", EmployeeID: "emp-1", Date: time.Date(2024, 3, 4, 0, 0, 0, 0, loc), ClockIn: &in2, ClockOut: &out2},
	}

	svc := newTestService(days, nil, nil)
	resp, err := svc.MonthTimesheet(context.Background(), "emp-1", 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Len(t, resp.Days, 31)

	assert.Equal(t, string(StatusPresent), resp.Days[0].Status)
	assert.Equal(t, string(StatusNonWorking), resp.Days[1].Status, "Mar 2 is a Saturday")
	assert.Equal(t, string(StatusLate), resp.Days[3].Status)
	assert.Equal(t, 20, resp.Days[3].LatenessMinutes)
	assert.Equal(t, string(StatusAbsent), resp.Days[4].Status, "working day without a row")

	assert.Equal(t, 2, resp.Summary.DaysWorked)
	assert.Equal(t, 1, resp.Summary.DaysLate)
	assert.InDelta(t, 9.0+8.0+40.0/60.0, resp.Summary.TotalHours, 0.01)
	assert.NotEmpty(t, resp.Weeks)
}

func TestMonthTimesheetLeaveOverlay(t *testing.T) {
	region, _ := timezone.NewRegion("+04:00")
	loc := region.Location()
	decided := time.Date(2024, 3, 2, 10, 0, 0, 0, loc)

	lvs := []leave.Request{{
		ID:         "lv-1",
		EmployeeID: "emp-1",
		Type:       leave.TypeSick,
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		EndDate:    time.Date(2024, 3, 6, 0, 0, 0, 0, loc),
		Status:     leave.StatusApproved,
		DecidedAt:  &decided,
	}}

	svc := newTestService(nil, nil, lvs)
	resp, err := svc.MonthTimesheet(context.Background(), "emp-1", 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, string(StatusLeave), resp.Days[3].Status)
	assert.Equal(t, string(StatusLeave), resp.Days[4].Status)
	assert.Equal(t, string(StatusLeave), resp.Days[5].Status)
	assert.Equal(t, string(StatusAbsent), resp.Days[6].Status)
	assert.Equal(t, 3, resp.Summary.DaysLeave)
}

func TestMonthTimesheetScheduleFailureCarriedPerDay(t *testing.T) {
	region, _ := timezone.NewRegion("+04:00")

	broken := weekdaysNineToSix()
	// Expected clock-out before clock-in on Wednesdays only.
	broken.Days[2].ClockInTime = clockAt(18, 0)
	broken.Days[2].ClockOutTime = clockAt(9, 0)

	svc := NewTimesheetService(
		&fakeAttendanceRepo{},
		&fakeScheduleRepo{ws: broken},
		&fakeExceptionRepo{},
		&fakeLeaveRepo{},
		region,
		Config{},
	)

	resp, err := svc.MonthTimesheet(context.Background(), "emp-1", 2024, time.March)
	require.NoError(t, err, "a malformed day must not abort the month")

	// 2024-03-06 is a Wednesday.
	require.NotNil(t, resp.Days[5].Error)
	assert.Contains(t, *resp.Days[5].Error, "clock-out")
	assert.Equal(t, string(StatusAbsent), resp.Days[6].Status, "Thursday still classifies")
}
