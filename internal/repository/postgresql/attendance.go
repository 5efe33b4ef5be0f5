package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.worked_minutes,
	a.status, a.is_remote, a.note, a.late_minutes, a.early_by_minutes,
	a.created_at, a.updated_at
`

func scanDay(row interface{ Scan(...interface{}) error }, withName bool) (attendance.Day, error) {
	var d attendance.Day
	dest := []interface{}{
		&d.ID,
		&d.EmployeeID,
		&d.Date,
		&d.ClockIn,
		&d.ClockOut,
		&d.WorkedMinutes,
		&d.Status,
		&d.IsRemote,
		&d.Note,
		&d.LateMinutes,
		&d.EarlyByMinutes,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
	if withName {
		dest = append(dest, &d.EmployeeName)
	}
	err := row.Scan(dest...)
	return d, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (
			employee_id, date, clock_in, clock_out, worked_minutes,
			status, is_remote, note, late_minutes, early_by_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.EmployeeID,
		day.Date,
		day.ClockIn,
		day.ClockOut,
		day.WorkedMinutes,
		day.Status,
		day.IsRemote,
		day.Note,
		day.LateMinutes,
		day.EarlyByMinutes,
	).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		return attendance.Day{}, err
	}
	return day, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name
		FROM attendance_days a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`
	return scanDay(q.QueryRow(ctx, query, id), true)
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.employee_id = $1 AND a.date = $2
	`
	d, err := scanDay(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, day attendance.Day) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days
		SET clock_in = $1, clock_out = $2, worked_minutes = $3, status = $4,
		    is_remote = $5, note = $6, late_minutes = $7, early_by_minutes = $8,
		    updated_at = NOW()
		WHERE id = $9
	`

	_, err := q.Exec(ctx, query,
		day.ClockIn,
		day.ClockOut,
		day.WorkedMinutes,
		day.Status,
		day.IsRemote,
		day.Note,
		day.LateMinutes,
		day.EarlyByMinutes,
		day.ID,
	)
	return err
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Day, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	addArg := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.EmployeeID != nil {
		addArg("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.StartDate != nil {
		addArg("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addArg("a.date <= $%d", *filter.EndDate)
	}
	if filter.Status != nil {
		addArg("a.status = $%d", *filter.Status)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_days a` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "date"
	switch filter.SortBy {
	case "clock_in", "clock_out", "status", "date":
		sortBy = filter.SortBy
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM attendance_days a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.%s %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, sortBy, sortOrder, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		d, err := scanDay(rows, true)
		if err != nil {
			return nil, 0, err
		}
		days = append(days, d)
	}
	return days, total, rows.Err()
}

func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		d, err := scanDay(rows, false)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *attendanceRepositoryImpl) HasClockedIn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_days WHERE employee_id = $1 AND date = $2 AND clock_in IS NOT NULL)`,
		employeeID, date,
	).Scan(&exists)
	return exists, err
}

func (r *attendanceRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.employee_id = $1 AND a.clock_in IS NOT NULL AND a.clock_out IS NULL
		ORDER BY a.date DESC
		LIMIT 1
	`
	return scanDay(q.QueryRow(ctx, query, employeeID), false)
}

func (r *attendanceRepositoryImpl) GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.clock_in IS NOT NULL
		  AND a.clock_out IS NULL
		  AND a.clock_in < NOW() - ($1 || ' hours')::interval
		ORDER BY a.clock_in ASC
	`

	rows, err := q.Query(ctx, query, olderThanHours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		d, err := scanDay(rows, false)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *attendanceRepositoryImpl) BulkCreateAbsences(ctx context.Context, days []attendance.Day) error {
	if len(days) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	var values []string
	var args []interface{}
	for _, d := range days {
		args = append(args, d.EmployeeID, d.Date, d.Status)
		n := len(args)
		values = append(values, fmt.Sprintf("($%d, $%d, $%d)", n-2, n-1, n))
	}

	query := `
		INSERT INTO attendance_days (employee_id, date, status)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	_, err := q.Exec(ctx, query, args...)
	return err
}
