package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
)

var testLoc = time.FixedZone("UTC+04:00", 4*3600)

// Friday 2024-03-15 at regional midnight.
func testDate() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, testLoc)
}

func at(hour, min int) time.Time {
	d := testDate()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, testLoc)
}

func workingDay(inHour, inMin, outHour, outMin int) schedule.ResolvedDay {
	return schedule.ResolvedDay{
		IsWorkingDay:     true,
		ExpectedClockIn:  at(inHour, inMin),
		ExpectedClockOut: at(outHour, outMin),
	}
}

func dayWith(in, out *time.Time) attendance.Day {
	return attendance.Day{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       testDate(),
		ClockIn:    in,
		ClockOut:   out,
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestClassifyOnTimeNoClockOut(t *testing.T) {
	// Clock-in exactly equal to expected is present, not late, and the day
	// stays open.
	c := Classify(dayWith(ptr(at(9, 0)), nil), workingDay(9, 0, 18, 0), nil, nil, Config{})

	assert.Equal(t, StatusPresent, c.Status)
	assert.Equal(t, 0, c.LatenessMinutes)
	assert.Equal(t, 0, c.EarlinessMinutes)
	assert.Nil(t, c.TotalHours)
}

func TestClassifyOneMinuteLate(t *testing.T) {
	c := Classify(dayWith(ptr(at(9, 1)), nil), workingDay(9, 0, 18, 0), nil, nil, Config{})

	assert.Equal(t, StatusLate, c.Status)
	assert.Equal(t, 1, c.LatenessMinutes)
}

func TestClassifyLateNoClockOut(t *testing.T) {
	// 09:15 against an expected 09:00 with no clock-out.
	c := Classify(dayWith(ptr(at(9, 15)), nil), workingDay(9, 0, 18, 0), nil, nil, Config{})

	assert.Equal(t, StatusLate, c.Status)
	assert.Equal(t, 15, c.LatenessMinutes)
	assert.Nil(t, c.TotalHours)
}

func TestClassifyEarlyInEarlyOut(t *testing.T) {
	// 08:45 to 17:45 against 09:00-18:00: present, 15 minutes early out, 9h.
	c := Classify(dayWith(ptr(at(8, 45)), ptr(at(17, 45))), workingDay(9, 0, 18, 0), nil, nil, Config{})

	assert.Equal(t, StatusPresent, c.Status)
	assert.Equal(t, 0, c.LatenessMinutes)
	assert.Equal(t, 15, c.EarlinessMinutes)
	require.NotNil(t, c.TotalHours)
	assert.InDelta(t, 9.0, *c.TotalHours, 0.001)
}

func TestClassifyNonWorkingDay(t *testing.T) {
	// Status is non-working regardless of recorded clocks.
	c := Classify(dayWith(ptr(at(9, 0)), ptr(at(18, 0))), schedule.ResolvedDay{IsWorkingDay: false}, nil, nil, Config{})

	assert.Equal(t, StatusNonWorking, c.Status)
	assert.Equal(t, 0, c.LatenessMinutes)
	assert.Nil(t, c.TotalHours)
}

func TestClassifyAbsent(t *testing.T) {
	c := Classify(dayWith(nil, nil), workingDay(9, 0, 18, 0), nil, nil, Config{})

	assert.Equal(t, StatusAbsent, c.Status)
	assert.Nil(t, c.TotalHours)
}

func TestClassifyLeaveOverridesAbsent(t *testing.T) {
	decided := at(12, 0)
	leaves := []leave.Request{{
		ID:         "lv-1",
		EmployeeID: "emp-1",
		Type:       leave.TypeAnnual,
		StartDate:  testDate().AddDate(0, 0, -2),
		EndDate:    testDate().AddDate(0, 0, 2),
		Status:     leave.StatusApproved,
		DecidedAt:  &decided,
	}}

	c := Classify(dayWith(nil, nil), workingDay(9, 0, 18, 0), nil, leaves, Config{})

	assert.Equal(t, StatusLeave, c.Status)
	assert.Equal(t, 0, c.LatenessMinutes)
	assert.Nil(t, c.TotalHours)
}

func TestClassifyLeaveWinsOverException(t *testing.T) {
	decided := at(12, 0)
	leaves := []leave.Request{{
		ID:        "lv-1",
		StartDate: testDate(),
		EndDate:   testDate(),
		Status:    leave.StatusApproved,
		DecidedAt: &decided,
	}}
	exceptions := []exception.Request{{
		ID:              "exc-1",
		Date:            testDate(),
		Type:            exception.TypeMissedClockIn,
		ProposedClockIn: ptr(at(9, 5)),
		Status:          exception.StatusApproved,
		DecidedAt:       &decided,
	}}

	c := Classify(dayWith(nil, nil), workingDay(9, 0, 18, 0), exceptions, leaves, Config{})

	assert.Equal(t, StatusLeave, c.Status)
}

func TestClassifyMissedClockInException(t *testing.T) {
	// An approved missed_clock_in substitutes 09:05 for the absent clock-in.
	decided := at(12, 0)
	exceptions := []exception.Request{{
		ID:              "exc-1",
		Date:            testDate(),
		Type:            exception.TypeMissedClockIn,
		ProposedClockIn: ptr(at(9, 5)),
		Status:          exception.StatusApproved,
		DecidedAt:       &decided,
	}}

	c := Classify(dayWith(nil, nil), workingDay(9, 0, 18, 0), exceptions, nil, Config{})

	assert.Equal(t, StatusLate, c.Status)
	assert.Equal(t, 5, c.LatenessMinutes)
}

func TestClassifyMissedClockInLeavesClockOutAlone(t *testing.T) {
	decided := at(12, 0)
	exceptions := []exception.Request{{
		ID:               "exc-1",
		Date:             testDate(),
		Type:             exception.TypeMissedClockIn,
		ProposedClockIn:  ptr(at(9, 0)),
		ProposedClockOut: ptr(at(19, 0)), // must be ignored for this type
		Status:           exception.StatusApproved,
		DecidedAt:        &decided,
	}}

	c := Classify(dayWith(nil, ptr(at(18, 0))), workingDay(9, 0, 18, 0), exceptions, nil, Config{})

	assert.Equal(t, StatusPresent, c.Status)
	require.NotNil(t, c.TotalHours)
	assert.InDelta(t, 9.0, *c.TotalHours, 0.001)
}

func TestClassifyPendingOverlaysIgnored(t *testing.T) {
	exceptions := []exception.Request{{
		ID:              "exc-1",
		Date:            testDate(),
		Type:            exception.TypeMissedClockIn,
		ProposedClockIn: ptr(at(9, 0)),
		Status:          exception.StatusPending,
	}}
	leaves := []leave.Request{{
		ID:        "lv-1",
		StartDate: testDate(),
		EndDate:   testDate(),
		Status:    leave.StatusRejected,
	}}

	c := Classify(dayWith(nil, nil), workingDay(9, 0, 18, 0), exceptions, leaves, Config{})

	assert.Equal(t, StatusAbsent, c.Status)
}

func TestClassifyBreakDeduction(t *testing.T) {
	cfg := Config{BreakDeductionMinutes: 60, BreakThresholdMinutes: 6 * 60}

	c := Classify(dayWith(ptr(at(9, 0)), ptr(at(18, 0))), workingDay(9, 0, 18, 0), nil, nil, cfg)

	require.NotNil(t, c.TotalHours)
	assert.InDelta(t, 8.0, *c.TotalHours, 0.001)
}

func TestClassifyBreakDeductionBelowThreshold(t *testing.T) {
	cfg := Config{BreakDeductionMinutes: 60, BreakThresholdMinutes: 6 * 60}

	c := Classify(dayWith(ptr(at(9, 0)), ptr(at(13, 0))), workingDay(9, 0, 18, 0), nil, nil, cfg)

	require.NotNil(t, c.TotalHours)
	assert.InDelta(t, 4.0, *c.TotalHours, 0.001)
}

func TestClassifyIdempotent(t *testing.T) {
	day := dayWith(ptr(at(9, 7)), ptr(at(17, 30)))
	resolved := workingDay(9, 0, 18, 0)

	first := Classify(day, resolved, nil, nil, Config{})
	second := Classify(day, resolved, nil, nil, Config{})

	assert.Equal(t, first, second)
}
