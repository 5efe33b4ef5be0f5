package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound   = errors.New("work schedule not found")
	ErrNoDefaultSchedule  = errors.New("no default work schedule configured")
	ErrAssignmentNotFound = errors.New("schedule assignment not found")
	ErrMalformedSchedule  = errors.New("expected clock-out does not follow expected clock-in")
	ErrDefaultUndeletable = errors.New("the default work schedule cannot be deleted")
)
