package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
)

func TestApplyOverlayMostRecentlyApprovedWins(t *testing.T) {
	earlier := at(10, 0)
	later := at(14, 0)
	exceptions := []exception.Request{
		{
			ID:              "exc-old",
			Date:            testDate(),
			Type:            exception.TypeMissedClockIn,
			ProposedClockIn: ptr(at(9, 30)),
			Status:          exception.StatusApproved,
			DecidedAt:       &earlier,
		},
		{
			ID:              "exc-new",
			Date:            testDate(),
			Type:            exception.TypeMissedClockIn,
			ProposedClockIn: ptr(at(9, 5)),
			Status:          exception.StatusApproved,
			DecidedAt:       &later,
		},
	}

	eff := ApplyOverlay(dayWith(nil, nil), exceptions, nil)

	require.NotNil(t, eff.Exception)
	assert.Equal(t, "exc-new", eff.Exception.ID)
	require.NotNil(t, eff.Day.ClockIn)
	assert.True(t, eff.Day.ClockIn.Equal(at(9, 5)))
}

func TestApplyOverlayDeterministic(t *testing.T) {
	decided := at(10, 0)
	exceptions := []exception.Request{
		{ID: "a", Date: testDate(), Type: exception.TypeWrongTime,
			ProposedClockIn: ptr(at(9, 0)), ProposedClockOut: ptr(at(18, 0)),
			Status: exception.StatusApproved, DecidedAt: &decided},
	}
	leaves := []leave.Request{
		{ID: "l", StartDate: testDate(), EndDate: testDate(),
			Status: leave.StatusApproved, DecidedAt: &decided},
	}

	first := ApplyOverlay(dayWith(nil, nil), exceptions, leaves)
	second := ApplyOverlay(dayWith(nil, nil), exceptions, leaves)

	assert.Equal(t, first, second)
}

func TestApplyOverlayNeverMutatesInputs(t *testing.T) {
	decided := at(10, 0)
	day := dayWith(ptr(at(8, 0)), ptr(at(16, 0)))
	originalIn := *day.ClockIn
	exceptions := []exception.Request{{
		ID:              "exc-1",
		Date:            testDate(),
		Type:            exception.TypeLateArrival,
		ProposedClockIn: ptr(at(9, 0)),
		Status:          exception.StatusApproved,
		DecidedAt:       &decided,
	}}

	eff := ApplyOverlay(day, exceptions, nil)

	assert.True(t, day.ClockIn.Equal(originalIn), "input day must not change")
	require.NotNil(t, eff.Day.ClockIn)
	assert.True(t, eff.Day.ClockIn.Equal(at(9, 0)))
	assert.True(t, eff.Day.ClockOut.Equal(at(16, 0)), "late_arrival corrects clock-in only")
}

func TestApplyOverlayWrongDateIgnored(t *testing.T) {
	decided := at(10, 0)
	exceptions := []exception.Request{{
		ID:              "exc-1",
		Date:            testDate().AddDate(0, 0, 1),
		Type:            exception.TypeMissedClockIn,
		ProposedClockIn: ptr(at(9, 0)),
		Status:          exception.StatusApproved,
		DecidedAt:       &decided,
	}}

	eff := ApplyOverlay(dayWith(nil, nil), exceptions, nil)

	assert.Nil(t, eff.Exception)
	assert.Nil(t, eff.Day.ClockIn)
}

func TestApplyOverlayLeaveRangeCoverage(t *testing.T) {
	decided := at(10, 0)
	leaves := []leave.Request{{
		ID:        "lv-1",
		StartDate: testDate().AddDate(0, 0, -5),
		EndDate:   testDate().AddDate(0, 0, -1), // ends yesterday
		Status:    leave.StatusApproved,
		DecidedAt: &decided,
	}}

	eff := ApplyOverlay(dayWith(nil, nil), nil, leaves)

	assert.Nil(t, eff.Leave)
}
