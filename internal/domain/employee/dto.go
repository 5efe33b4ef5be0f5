package employee

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	DOB            *string `json:"dob,omitempty"` // YYYY-MM-DD
	Department     *string `json:"department,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	HireDate       string  `json:"hire_date"` // YYYY-MM-DD
	EmploymentType string  `json:"employment_type"`
	BaseSalary     *string `json:"base_salary,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.DOB != nil {
		if _, valid := validator.IsValidDate(*r.DOB); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}
	if _, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Address          *string `json:"address,omitempty"`
	Department       *string `json:"department,omitempty"`
	JobTitle         *string `json:"job_title,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
	ResignationDate  *string `json:"resignation_date,omitempty"` // YYYY-MM-DD
	BaseSalary       *string `json:"base_salary,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: " + strings.Join(EmploymentTypeValues, ", "),
		})
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, EmploymentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: " + strings.Join(EmploymentStatusValues, ", "),
		})
	}
	if r.ResignationDate != nil {
		if _, valid := validator.IsValidDate(*r.ResignationDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "resignation_date",
				Message: "resignation_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Response is the full employee view returned to admins.
type Response struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Address          *string `json:"address,omitempty"`
	DOB              *string `json:"dob,omitempty"`
	AvatarURL        *string `json:"avatar_url,omitempty"`
	Department       *string `json:"department,omitempty"`
	JobTitle         *string `json:"job_title,omitempty"`
	HireDate         string  `json:"hire_date"`
	ResignationDate  *string `json:"resignation_date,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	EmploymentStatus string  `json:"employment_status"`
	BaseSalary       *string `json:"base_salary,omitempty"`
}

// DirectoryResponse is the reduced view returned to regular employees.
type DirectoryResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
}

func MapToResponse(e Employee) Response {
	resp := Response{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		Address:          e.Address,
		AvatarURL:        e.AvatarURL,
		Department:       e.Department,
		JobTitle:         e.JobTitle,
		HireDate:         e.HireDate.Format("2006-01-02"),
		EmploymentType:   string(e.EmploymentType),
		EmploymentStatus: string(e.EmploymentStatus),
	}
	if e.DOB != nil {
		s := e.DOB.Format("2006-01-02")
		resp.DOB = &s
	}
	if e.ResignationDate != nil {
		s := e.ResignationDate.Format("2006-01-02")
		resp.ResignationDate = &s
	}
	if e.BaseSalary != nil {
		s := e.BaseSalary.String()
		resp.BaseSalary = &s
	}
	return resp
}

func MapToDirectoryResponse(rec DirectoryRecord) DirectoryResponse {
	return DirectoryResponse{
		ID:         rec.ID,
		FullName:   rec.FullName,
		Email:      rec.Email,
		AvatarURL:  rec.AvatarURL,
		Department: rec.Department,
		JobTitle:   rec.JobTitle,
	}
}
