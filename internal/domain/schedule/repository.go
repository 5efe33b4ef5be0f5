package schedule

import (
	"context"
	"time"
)

// WorkScheduleRepository defines data access for schedules and their days.
type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	GetDefault(ctx context.Context) (WorkSchedule, error)
	List(ctx context.Context) ([]WorkSchedule, error)
	Update(ctx context.Context, req UpdateScheduleRequest) (WorkSchedule, error)
	SoftDelete(ctx context.Context, id string) error

	// GetForEmployee resolves the effective schedule for an employee on a
	// date: an assignment covering the date wins, otherwise the default.
	GetForEmployee(ctx context.Context, employeeID string, date time.Time) (WorkSchedule, error)
}

// AssignmentRepository manages per-employee schedule overrides.
type AssignmentRepository interface {
	Assign(ctx context.Context, assignment EmployeeAssignment) (EmployeeAssignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeAssignment, error)
	Delete(ctx context.Context, id string) error
}
