package schedule

import "time"

type WorkSchedule struct {
	ID        string
	Name      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	Days []ScheduleDay
}

// ScheduleDay defines the expectation for one weekday. ClockInTime and
// ClockOutTime carry only a time-of-day; their date parts are ignored.
type ScheduleDay struct {
	ID           string
	ScheduleID   string
	Weekday      int // 1=Monday, ..., 7=Sunday
	IsWorking    bool
	ClockInTime  time.Time
	ClockOutTime time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeAssignment overrides the default schedule for one employee over a
// date range. A nil EndDate means open-ended.
type EmployeeAssignment struct {
	ID         string
	EmployeeID string
	ScheduleID string
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResolvedDay is the schedule expectation for one employee on one calendar
// date, with expected instants placed in the regional timezone. Non-working
// days carry zero expected instants.
type ResolvedDay struct {
	IsWorkingDay     bool
	ExpectedClockIn  time.Time
	ExpectedClockOut time.Time
}

// ISOWeekday maps time.Weekday to the 1=Monday..7=Sunday convention the
// schedule table uses.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
