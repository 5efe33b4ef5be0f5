package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByUserID(ctx context.Context, userID string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, search *string) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
