package leave

import "time"

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeUnpaid    Type = "unpaid"
	TypeParental  Type = "parental"
	TypeMarriage  Type = "marriage"
	TypeBereaved  Type = "bereavement"
)

var TypeValues = []string{
	string(TypeAnnual),
	string(TypeSick),
	string(TypeUnpaid),
	string(TypeParental),
	string(TypeMarriage),
	string(TypeBereaved),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a leave request covering an inclusive date range. StartDate and
// EndDate are regional dates stored at midnight.
type Request struct {
	ID           string
	EmployeeID   string
	Type         Type
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	AdminComment *string
	DecidedBy    *string
	DecidedAt    *time.Time
	SubmittedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	EmployeeName *string
}

// Covers reports whether date falls within the request's inclusive range.
func (r *Request) Covers(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}
