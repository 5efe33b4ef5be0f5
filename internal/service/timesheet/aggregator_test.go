package timesheet

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
)

func presentDay(date time.Time, hours float64) DayResult {
	h := hours
	return DayResult{
		Date: date,
		Classification: DayClassification{
			Date:       date,
			Status:     StatusPresent,
			TotalHours: &h,
		},
	}
}

func TestAggregateMonthRoundTrip(t *testing.T) {
	// N present days of 8 hours each sum to 8*N with average 8.
	const n = 21
	results := make([]DayResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, presentDay(time.Date(2024, 3, 1+i, 0, 0, 0, 0, testLoc), 8))
	}

	sum := AggregateMonth(results, 2024, time.March)

	assert.InDelta(t, 8.0*n, sum.TotalHours, 0.001)
	assert.Equal(t, n, sum.DaysWorked)
	assert.InDelta(t, 8.0, sum.AverageHoursPerDay, 0.001)
	assert.Equal(t, 0, sum.DaysAbsent)
}

func TestAggregateMonthMixedStatuses(t *testing.T) {
	late := presentDay(time.Date(2024, 3, 4, 0, 0, 0, 0, testLoc), 7.5)
	late.Classification.Status = StatusLate
	late.Classification.LatenessMinutes = 30

	results := []DayResult{
		presentDay(time.Date(2024, 3, 1, 0, 0, 0, 0, testLoc), 8),
		late,
		{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, testLoc),
			Classification: DayClassification{Status: StatusAbsent}},
		{Date: time.Date(2024, 3, 6, 0, 0, 0, 0, testLoc),
			Classification: DayClassification{Status: StatusLeave}},
		{Date: time.Date(2024, 3, 9, 0, 0, 0, 0, testLoc),
			Classification: DayClassification{Status: StatusNonWorking}},
	}

	sum := AggregateMonth(results, 2024, time.March)

	assert.Equal(t, 2, sum.DaysWorked)
	assert.Equal(t, 1, sum.DaysLate)
	assert.Equal(t, 1, sum.DaysAbsent)
	assert.Equal(t, 1, sum.DaysLeave)
	assert.Equal(t, 30, sum.LatenessMinutes)
	assert.InDelta(t, 15.5, sum.TotalHours, 0.001)
	assert.InDelta(t, 7.75, sum.AverageHoursPerDay, 0.001)
}

func TestAggregateMonthZeroDaysWorked(t *testing.T) {
	results := []DayResult{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, testLoc),
			Classification: DayClassification{Status: StatusAbsent}},
	}

	sum := AggregateMonth(results, 2024, time.March)

	assert.Equal(t, 0, sum.DaysWorked)
	assert.Equal(t, 0.0, sum.AverageHoursPerDay)
}

func TestAggregateMonthSkipsFailedDays(t *testing.T) {
	results := []DayResult{
		presentDay(time.Date(2024, 3, 1, 0, 0, 0, 0, testLoc), 8),
		{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, testLoc), Err: schedule.ErrMalformedSchedule},
	}

	sum := AggregateMonth(results, 2024, time.March)

	assert.Equal(t, 1, sum.DaysWorked)
	assert.InDelta(t, 8.0, sum.TotalHours, 0.001)
}

func TestAggregateWeeksMonthBoundary(t *testing.T) {
	// Friday 2024-03-01 falls in the ISO week starting Monday 2024-02-26.
	// A February day in that same week must not leak into March's totals,
	// while the week range still shows the full Monday-to-Sunday span.
	results := []DayResult{
		presentDay(time.Date(2024, 2, 29, 0, 0, 0, 0, testLoc), 8), // prior month
		presentDay(time.Date(2024, 3, 1, 0, 0, 0, 0, testLoc), 8),
	}

	weeks := AggregateWeeks(results, 2024, time.March)

	require.Len(t, weeks, 1)
	assert.Equal(t, "2024-02-26", weeks[0].Start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-03", weeks[0].End.Format("2006-01-02"))
	assert.Equal(t, 1, weeks[0].DaysWorked)
	assert.InDelta(t, 8.0, weeks[0].TotalHours, 0.001)
}

func TestAggregateWeeksOrderedAndGrouped(t *testing.T) {
	results := []DayResult{
		presentDay(time.Date(2024, 3, 11, 0, 0, 0, 0, testLoc), 8), // week of Mar 11
		presentDay(time.Date(2024, 3, 4, 0, 0, 0, 0, testLoc), 8),  // week of Mar 4
		presentDay(time.Date(2024, 3, 5, 0, 0, 0, 0, testLoc), 7),  // week of Mar 4
	}

	weeks := AggregateWeeks(results, 2024, time.March)

	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-03-04", weeks[0].Start.Format("2006-01-02"))
	assert.Equal(t, 2, weeks[0].DaysWorked)
	assert.InDelta(t, 15.0, weeks[0].TotalHours, 0.001)
	assert.Equal(t, "2024-03-11", weeks[1].Start.Format("2006-01-02"))
}

func TestAggregateWeeksSkipsFailedAndOutOfMonth(t *testing.T) {
	results := []DayResult{
		{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, testLoc), Err: errors.New("boom")},
		presentDay(time.Date(2024, 4, 1, 0, 0, 0, 0, testLoc), 8),
	}

	weeks := AggregateWeeks(results, 2024, time.March)

	assert.Empty(t, weeks)
}
