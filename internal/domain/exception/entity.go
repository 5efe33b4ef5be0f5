package exception

import "time"

// Type identifies which recorded times an exception corrects.
type Type string

const (
	TypeLateArrival    Type = "late_arrival"
	TypeEarlyDeparture Type = "early_departure"
	TypeMissedClockIn  Type = "missed_clock_in"
	TypeMissedClockOut Type = "missed_clock_out"
	TypeWrongTime      Type = "wrong_time"
)

var TypeValues = []string{
	string(TypeLateArrival),
	string(TypeEarlyDeparture),
	string(TypeMissedClockIn),
	string(TypeMissedClockOut),
	string(TypeWrongTime),
}

// CorrectsClockIn reports whether an approved exception of this type
// substitutes the clock-in instant.
func (t Type) CorrectsClockIn() bool {
	switch t {
	case TypeLateArrival, TypeMissedClockIn, TypeWrongTime:
		return true
	}
	return false
}

// CorrectsClockOut reports whether an approved exception of this type
// substitutes the clock-out instant.
func (t Type) CorrectsClockOut() bool {
	switch t {
	case TypeEarlyDeparture, TypeMissedClockOut, TypeWrongTime:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee's correction proposal for one attendance day. It
// transitions pending -> approved/rejected exactly once; once approved its
// proposed instants supersede the day's recorded instants for
// classification.
type Request struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	Type             Type
	ProposedClockIn  *time.Time
	ProposedClockOut *time.Time
	Reason           string
	Status           Status
	AdminComment     *string
	DecidedBy        *string
	DecidedAt        *time.Time
	SubmittedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for responses
	EmployeeName *string
}
