package document

import "context"

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Document, error)
	SoftDelete(ctx context.Context, id string) error
}
