package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	UserID           *string
	EmployeeCode     string
	FullName         string
	Email            string
	PhoneNumber      *string
	Address          *string
	DOB              *time.Time
	AvatarURL        *string
	Department       *string
	JobTitle         *string
	HireDate         time.Time
	ResignationDate  *time.Time
	EmploymentType   EmploymentType
	EmploymentStatus EmploymentStatus
	BaseSalary       *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// DirectoryRecord is the reduced view of an employee exposed to non-admin
// callers. Compensation and personal contact details never leave the admin
// surface.
type DirectoryRecord struct {
	ID         string
	FullName   string
	Email      string
	AvatarURL  *string
	Department *string
	JobTitle   *string
}

// Directory strips an Employee down to its public view.
func (e *Employee) Directory() DirectoryRecord {
	return DirectoryRecord{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		AvatarURL:  e.AvatarURL,
		Department: e.Department,
		JobTitle:   e.JobTitle,
	}
}

type EmploymentType string

const (
	EmploymentTypePermanent  EmploymentType = "permanent"
	EmploymentTypeProbation  EmploymentType = "probation"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
)

var EmploymentTypeValues = []string{
	string(EmploymentTypePermanent),
	string(EmploymentTypeProbation),
	string(EmploymentTypeContract),
	string(EmploymentTypeInternship),
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusResigned),
	string(EmploymentStatusTerminated),
}
