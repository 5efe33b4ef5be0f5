package timesheet

import (
	"fmt"
	"sort"
	"time"
)

// AggregateWeeks partitions a month's day results into ISO weeks starting
// Monday. Week ranges are reported in full even when they cross a month
// boundary, but only days belonging to the requested month contribute to the
// totals, so a day shared by two month views is never counted twice.
func AggregateWeeks(results []DayResult, year int, month time.Month) []WeekSummary {
	byWeek := make(map[string]*WeekSummary)

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if res.Date.Year() != year || res.Date.Month() != month {
			continue
		}

		isoYear, isoWeek := res.Date.ISOWeek()
		key := weekKey(isoYear, isoWeek)
		ws, ok := byWeek[key]
		if !ok {
			start := weekStart(res.Date)
			ws = &WeekSummary{
				Year:  isoYear,
				Week:  isoWeek,
				Start: start,
				End:   start.AddDate(0, 0, 6),
			}
			byWeek[key] = ws
		}

		c := res.Classification
		if c.Status == StatusPresent || c.Status == StatusLate {
			ws.DaysWorked++
			ws.LatenessMinutes += c.LatenessMinutes
			if c.TotalHours != nil {
				ws.TotalHours += *c.TotalHours
			}
		}
	}

	weeks := make([]WeekSummary, 0, len(byWeek))
	for _, ws := range byWeek {
		weeks = append(weeks, *ws)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Start.Before(weeks[j].Start)
	})
	return weeks
}

// AggregateMonth reduces a month's day results to a single summary. Hours are
// summed over present and late days only; leave, absent, and non-working days
// contribute zero hours and are excluded from the days-worked count. Failed
// days are skipped. Average reports 0 when no day was worked.
func AggregateMonth(results []DayResult, year int, month time.Month) MonthSummary {
	sum := MonthSummary{Year: year, Month: month}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if res.Date.Year() != year || res.Date.Month() != month {
			continue
		}

		c := res.Classification
		switch c.Status {
		case StatusPresent, StatusLate:
			sum.DaysWorked++
			sum.LatenessMinutes += c.LatenessMinutes
			sum.EarlinessMinutes += c.EarlinessMinutes
			if c.TotalHours != nil {
				sum.TotalHours += *c.TotalHours
			}
			if c.Status == StatusLate {
				sum.DaysLate++
			}
		case StatusAbsent:
			sum.DaysAbsent++
		case StatusLeave:
			sum.DaysLeave++
		}
	}

	if sum.DaysWorked > 0 {
		sum.AverageHoursPerDay = sum.TotalHours / float64(sum.DaysWorked)
	}
	return sum
}

// weekStart returns the Monday of the ISO week containing date, preserving
// the date's location.
func weekStart(date time.Time) time.Time {
	wd := int(date.Weekday())
	if wd == 0 {
		wd = 7
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		AddDate(0, 0, -(wd - 1))
}

func weekKey(isoYear, isoWeek int) string {
	return fmt.Sprintf("%d-%02d", isoYear, isoWeek)
}
