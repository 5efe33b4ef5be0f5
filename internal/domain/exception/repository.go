package exception

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, req *Request) error
	ListByEmployee(ctx context.Context, employeeID string, status *Status) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	HasPendingForDate(ctx context.Context, employeeID string, date time.Time, typ Type) (bool, error)
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error)
}
