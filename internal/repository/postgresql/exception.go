package postgresql

import (
	"context"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
)

type exceptionRepositoryImpl struct {
	db *database.DB
}

func NewExceptionRepository(db *database.DB) exception.Repository {
	return &exceptionRepositoryImpl{db: db}
}

const exceptionColumns = `
	x.id, x.employee_id, x.date, x.type, x.proposed_clock_in, x.proposed_clock_out,
	x.reason, x.status, x.admin_comment, x.decided_by, x.decided_at,
	x.submitted_at, x.created_at, x.updated_at
`

func scanException(row interface{ Scan(...interface{}) error }, withName bool) (exception.Request, error) {
	var req exception.Request
	dest := []interface{}{
		&req.ID,
		&req.EmployeeID,
		&req.Date,
		&req.Type,
		&req.ProposedClockIn,
		&req.ProposedClockOut,
		&req.Reason,
		&req.Status,
		&req.AdminComment,
		&req.DecidedBy,
		&req.DecidedAt,
		&req.SubmittedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	}
	if withName {
		dest = append(dest, &req.EmployeeName)
	}
	err := row.Scan(dest...)
	return req, err
}

func (r *exceptionRepositoryImpl) Create(ctx context.Context, req *exception.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO exception_requests (
			employee_id, date, type, proposed_clock_in, proposed_clock_out,
			reason, status, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Date,
		req.Type,
		req.ProposedClockIn,
		req.ProposedClockOut,
		req.Reason,
		req.Status,
		req.SubmittedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *exceptionRepositoryImpl) GetByID(ctx context.Context, id string) (*exception.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `, e.full_name
		FROM exception_requests x
		JOIN employees e ON e.id = x.employee_id
		WHERE x.id = $1
	`

	req, err := scanException(q.QueryRow(ctx, query, id), true)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *exceptionRepositoryImpl) Update(ctx context.Context, req *exception.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE exception_requests
		SET status = $1, admin_comment = $2, decided_by = $3, decided_at = $4,
		    updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	return q.QueryRow(ctx, query,
		req.Status,
		req.AdminComment,
		req.DecidedBy,
		req.DecidedAt,
		req.ID,
	).Scan(&req.UpdatedAt)
}

func (r *exceptionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, status *exception.Status) ([]exception.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `
		FROM exception_requests x
		WHERE x.employee_id = $1
	`
	args := []interface{}{employeeID}
	if status != nil {
		query += ` AND x.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY x.date DESC, x.submitted_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []exception.Request
	for rows.Next() {
		req, err := scanException(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *exceptionRepositoryImpl) ListPending(ctx context.Context) ([]exception.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `, e.full_name
		FROM exception_requests x
		JOIN employees e ON e.id = x.employee_id
		WHERE x.status = 'pending'
		ORDER BY x.submitted_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []exception.Request
	for rows.Next() {
		req, err := scanException(rows, true)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *exceptionRepositoryImpl) HasPendingForDate(ctx context.Context, employeeID string, date time.Time, typ exception.Type) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM exception_requests
			WHERE employee_id = $1 AND date = $2 AND type = $3 AND status = 'pending'
		)`,
		employeeID, date, typ,
	).Scan(&exists)
	return exists, err
}

func (r *exceptionRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]exception.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `
		FROM exception_requests x
		WHERE x.employee_id = $1 AND x.status = 'approved'
		  AND x.date >= $2 AND x.date <= $3
		ORDER BY x.date ASC, x.decided_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []exception.Request
	for rows.Next() {
		req, err := scanException(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
