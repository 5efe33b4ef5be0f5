package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNoScheduleForDay  = errors.New("no working schedule for this day")
	ErrTooEarlyToClockIn = errors.New("too early to clock in")

	// Clock-out errors
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")
	ErrClockOutBeforeIn  = errors.New("clock-out must not precede clock-in")

	// General errors
	ErrDayNotFound = errors.New("attendance record not found")
)
