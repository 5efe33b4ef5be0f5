package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/user"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
)

// DirectoryEntry is either the full record or the reduced directory view,
// depending on what the caller is allowed to see. Exactly one side is set.
type DirectoryEntry struct {
	Full      *employee.Response          `json:"full,omitempty"`
	Directory *employee.DirectoryResponse `json:"directory,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error)
	Update(ctx context.Context, req employee.UpdateRequest) (employee.Response, error)
	Delete(ctx context.Context, id string) error

	// Get returns the full record to admins and to the employee themself,
	// and the directory view to everyone else.
	Get(ctx context.Context, id string) (DirectoryEntry, error)
	List(ctx context.Context, search *string) ([]DirectoryEntry, error)
}

type ServiceImpl struct {
	employeeRepo employee.Repository
	region       timezone.Region
}

func NewEmployeeService(employeeRepo employee.Repository, region timezone.Region) Service {
	return &ServiceImpl{employeeRepo: employeeRepo, region: region}
}

func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	taken, err := s.employeeRepo.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if taken {
		return employee.Response{}, employee.ErrEmployeeCodeTaken
	}
	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.Response{}, employee.ErrEmployeeEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Response{}, fmt.Errorf("failed to check employee email: %w", err)
	}

	hireDate, err := s.region.ParseDate(req.HireDate)
	if err != nil {
		return employee.Response{}, err
	}

	emp := employee.Employee{
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		Department:       req.Department,
		JobTitle:         req.JobTitle,
		HireDate:         hireDate,
		EmploymentType:   employee.EmploymentType(req.EmploymentType),
		EmploymentStatus: employee.EmploymentStatusActive,
	}
	if req.DOB != nil {
		dob, err := s.region.ParseDate(*req.DOB)
		if err != nil {
			return employee.Response{}, err
		}
		emp.DOB = &dob
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Response{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		emp.BaseSalary = &salary
	}

	if err := s.employeeRepo.Create(ctx, &emp); err != nil {
		return employee.Response{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.MapToResponse(emp), nil
}

func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Response{}, employee.ErrEmployeeNotFound
		}
		return employee.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.JobTitle != nil {
		emp.JobTitle = req.JobTitle
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}
	if req.ResignationDate != nil {
		d, err := s.region.ParseDate(*req.ResignationDate)
		if err != nil {
			return employee.Response{}, err
		}
		emp.ResignationDate = &d
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Response{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		emp.BaseSalary = &salary
	}
	emp.UpdatedAt = time.Now().UTC()

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Response{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.MapToResponse(*emp), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (DirectoryEntry, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DirectoryEntry{}, employee.ErrEmployeeNotFound
		}
		return DirectoryEntry{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.entryFor(ctx, *emp), nil
}

func (s *ServiceImpl) List(ctx context.Context, search *string) ([]DirectoryEntry, error) {
	employees, err := s.employeeRepo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]DirectoryEntry, 0, len(employees))
	for _, emp := range employees {
		out = append(out, s.entryFor(ctx, emp))
	}
	return out, nil
}

// entryFor applies the capability check: full record for admins and for the
// record's owner, directory view otherwise.
func (s *ServiceImpl) entryFor(ctx context.Context, emp employee.Employee) DirectoryEntry {
	if s.canViewFull(ctx, emp) {
		full := employee.MapToResponse(emp)
		return DirectoryEntry{Full: &full}
	}
	dir := employee.MapToDirectoryResponse(emp.Directory())
	return DirectoryEntry{Directory: &dir}
}

func (s *ServiceImpl) canViewFull(ctx context.Context, emp employee.Employee) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}
	if role, ok := claims["role"].(string); ok && user.Role(role) == user.RoleAdmin {
		return true
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" && employeeID == emp.ID {
		return true
	}
	return false
}
