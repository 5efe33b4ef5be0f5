package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

func (r *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		// Only one schedule can be the default.
		if ws.IsDefault {
			if _, err := q.Exec(txCtx, `UPDATE work_schedules SET is_default = FALSE WHERE is_default = TRUE`); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO work_schedules (name, is_default)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`
		if err := q.QueryRow(txCtx, query, ws.Name, ws.IsDefault).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return err
		}

		return r.insertDays(txCtx, ws.ID, ws.Days)
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return r.GetByID(ctx, ws.ID)
}

func (r *workScheduleRepositoryImpl) insertDays(ctx context.Context, scheduleID string, days []schedule.ScheduleDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedule_days (schedule_id, weekday, is_working, clock_in_time, clock_out_time)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, day := range days {
		var clockIn, clockOut *string
		if day.IsWorking {
			in := day.ClockInTime.Format("15:04")
			out := day.ClockOutTime.Format("15:04")
			clockIn, clockOut = &in, &out
		}
		if _, err := q.Exec(ctx, query, scheduleID, day.Weekday, day.IsWorking, clockIn, clockOut); err != nil {
			return err
		}
	}
	return nil
}

func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_default, created_at, updated_at
		FROM work_schedules
		WHERE id = $1 AND deleted_at IS NULL
	`

	var ws schedule.WorkSchedule
	if err := q.QueryRow(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.IsDefault, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
		return schedule.WorkSchedule{}, err
	}

	days, err := r.loadDays(ctx, ws.ID)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Days = days
	return ws, nil
}

func (r *workScheduleRepositoryImpl) GetDefault(ctx context.Context) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx,
		`SELECT id FROM work_schedules WHERE is_default = TRUE AND deleted_at IS NULL LIMIT 1`,
	).Scan(&id)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *workScheduleRepositoryImpl) loadDays(ctx context.Context, scheduleID string) ([]schedule.ScheduleDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, schedule_id, weekday, is_working,
		       to_char(clock_in_time, 'HH24:MI'), to_char(clock_out_time, 'HH24:MI'),
		       created_at, updated_at
		FROM work_schedule_days
		WHERE schedule_id = $1
		ORDER BY weekday ASC
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []schedule.ScheduleDay
	for rows.Next() {
		var day schedule.ScheduleDay
		var clockIn, clockOut *string
		if err := rows.Scan(
			&day.ID, &day.ScheduleID, &day.Weekday, &day.IsWorking,
			&clockIn, &clockOut, &day.CreatedAt, &day.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if clockIn != nil {
			if day.ClockInTime, err = time.Parse("15:04", *clockIn); err != nil {
				return nil, err
			}
		}
		if clockOut != nil {
			if day.ClockOutTime, err = time.Parse("15:04", *clockOut); err != nil {
				return nil, err
			}
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_default, created_at, updated_at
		FROM work_schedules
		WHERE deleted_at IS NULL
		ORDER BY is_default DESC, name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.IsDefault, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range schedules {
		days, err := r.loadDays(ctx, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Days = days
	}
	return schedules, nil
}

func (r *workScheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var exists bool
		if err := q.QueryRow(txCtx,
			`SELECT EXISTS(SELECT 1 FROM work_schedules WHERE id = $1 AND deleted_at IS NULL)`, req.ID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return pgx.ErrNoRows
		}

		if req.Name != nil {
			if _, err := q.Exec(txCtx,
				`UPDATE work_schedules SET name = $1, updated_at = NOW() WHERE id = $2`,
				*req.Name, req.ID,
			); err != nil {
				return err
			}
		}

		if req.IsDefault != nil && *req.IsDefault {
			if _, err := q.Exec(txCtx, `UPDATE work_schedules SET is_default = FALSE WHERE is_default = TRUE`); err != nil {
				return err
			}
			if _, err := q.Exec(txCtx,
				`UPDATE work_schedules SET is_default = TRUE, updated_at = NOW() WHERE id = $1`, req.ID,
			); err != nil {
				return err
			}
		}

		if req.Days != nil {
			if _, err := q.Exec(txCtx, `DELETE FROM work_schedule_days WHERE schedule_id = $1`, req.ID); err != nil {
				return err
			}
			days := make([]schedule.ScheduleDay, 0, len(req.Days))
			for _, in := range req.Days {
				day := schedule.ScheduleDay{Weekday: in.Weekday, IsWorking: in.IsWorking}
				if in.IsWorking {
					clockIn, err := time.Parse("15:04", in.ClockInTime)
					if err != nil {
						return err
					}
					clockOut, err := time.Parse("15:04", in.ClockOutTime)
					if err != nil {
						return err
					}
					day.ClockInTime = clockIn
					day.ClockOutTime = clockOut
				}
				days = append(days, day)
			}
			if err := r.insertDays(txCtx, req.ID, days); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return r.GetByID(ctx, req.ID)
}

func (r *workScheduleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE work_schedules SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	return err
}

// GetForEmployee resolves the effective schedule for a date: the most
// recently created assignment covering the date wins, otherwise the default
// schedule applies.
func (r *workScheduleRepositoryImpl) GetForEmployee(ctx context.Context, employeeID string, date time.Time) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.schedule_id
		FROM schedule_assignments sa
		JOIN work_schedules ws ON ws.id = sa.schedule_id AND ws.deleted_at IS NULL
		WHERE sa.employee_id = $1
		  AND sa.start_date <= $2
		  AND (sa.end_date IS NULL OR sa.end_date >= $2)
		ORDER BY sa.created_at DESC
		LIMIT 1
	`

	var scheduleID string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&scheduleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.GetDefault(ctx)
	}
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return r.GetByID(ctx, scheduleID)
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func (r *assignmentRepositoryImpl) Assign(ctx context.Context, assignment schedule.EmployeeAssignment) (schedule.EmployeeAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_assignments (employee_id, schedule_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID,
		assignment.ScheduleID,
		assignment.StartDate,
		assignment.EndDate,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return schedule.EmployeeAssignment{}, err
	}
	return assignment, nil
}

func (r *assignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.EmployeeAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, schedule_id, start_date, end_date, created_at, updated_at
		FROM schedule_assignments
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []schedule.EmployeeAssignment
	for rows.Next() {
		var a schedule.EmployeeAssignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.ScheduleID, &a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM schedule_assignments WHERE id = $1`, id)
	return err
}
