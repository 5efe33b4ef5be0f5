package attendance

import "time"

// Day is one employee's attendance record for one calendar date. ClockIn and
// ClockOut are absolute instants stored in UTC; Date is the regional
// calendar day. A row is created at clock-in and completed once at
// clock-out; after that only an approved exception overlay changes how it
// is interpreted, never the row itself.
type Day struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	ClockIn        *time.Time
	ClockOut       *time.Time
	WorkedMinutes  *int
	Status         string
	IsRemote       bool
	Note           *string
	LateMinutes    *int
	EarlyByMinutes *int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	EmployeeName *string
}

// Recorded status labels. The classifier derives its own status; these are
// what the persistence layer stores.
const (
	StatusPresent    = "present"
	StatusLate       = "late"
	StatusAbsent     = "absent"
	StatusAutoClosed = "auto_closed"
)
