package postgresql

import (
	"context"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
	l.status, l.admin_comment, l.decided_by, l.decided_at, l.submitted_at,
	l.created_at, l.updated_at
`

func scanLeave(row interface{ Scan(...interface{}) error }, withName bool) (leave.Request, error) {
	var req leave.Request
	dest := []interface{}{
		&req.ID,
		&req.EmployeeID,
		&req.Type,
		&req.StartDate,
		&req.EndDate,
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

func (r *leaveRepositoryImpl) Create(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_date, end_date, reason, status, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
		req.SubmittedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id), true)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
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

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, status *leave.Status) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1
	`
	args := []interface{}{employeeID}
	if status != nil {
		query += ` AND l.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY l.start_date DESC, l.submitted_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'pending'
		ORDER BY l.submitted_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows, true)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *leaveRepositoryImpl) HasPendingOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND status = 'pending'
			  AND start_date <= $3 AND end_date >= $2
		)`,
		employeeID, start, end,
	).Scan(&exists)
	return exists, err
}

func (r *leaveRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1 AND l.status = 'approved'
		  AND l.start_date <= $3 AND l.end_date >= $2
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
