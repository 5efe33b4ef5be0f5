package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance days.
type Repository interface {
	Create(ctx context.Context, day Day) (Day, error)
	GetByID(ctx context.Context, id string) (Day, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Day, error)
	Update(ctx context.Context, day Day) error

	List(ctx context.Context, filter Filter) ([]Day, int64, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Day, error)

	HasClockedIn(ctx context.Context, employeeID string, date time.Time) (bool, error)
	GetOpenSession(ctx context.Context, employeeID string) (Day, error)
	GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]Day, error)
	BulkCreateAbsences(ctx context.Context, days []Day) error
}
