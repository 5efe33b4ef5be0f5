package postgresql

import (
	"context"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, employee_code, full_name, email, phone_number, address,
	date_of_birth, avatar_url, department, job_title, hire_date,
	resignation_date, employment_type, employment_status, base_salary,
	created_at, updated_at, deleted_at
`

func scanEmployee(row interface{ Scan(...interface{}) error }) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Email,
		&e.PhoneNumber,
		&e.Address,
		&e.DOB,
		&e.AvatarURL,
		&e.Department,
		&e.JobTitle,
		&e.HireDate,
		&e.ResignationDate,
		&e.EmploymentType,
		&e.EmploymentStatus,
		&e.BaseSalary,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, employee_code, full_name, email, phone_number, address,
			date_of_birth, avatar_url, department, job_title, hire_date,
			employment_type, employment_status, base_salary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		emp.UserID,
		emp.EmployeeCode,
		emp.FullName,
		emp.Email,
		emp.PhoneNumber,
		emp.Address,
		emp.DOB,
		emp.AvatarURL,
		emp.Department,
		emp.JobTitle,
		emp.HireDate,
		emp.EmploymentType,
		emp.EmploymentStatus,
		emp.BaseSalary,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1 AND deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 AND deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET user_id = $1, employee_code = $2, full_name = $3, email = $4,
		    phone_number = $5, address = $6, date_of_birth = $7, avatar_url = $8,
		    department = $9, job_title = $10, hire_date = $11, resignation_date = $12,
		    employment_type = $13, employment_status = $14, base_salary = $15,
		    updated_at = NOW()
		WHERE id = $16 AND deleted_at IS NULL
		RETURNING updated_at
	`

	return q.QueryRow(ctx, query,
		emp.UserID,
		emp.EmployeeCode,
		emp.FullName,
		emp.Email,
		emp.PhoneNumber,
		emp.Address,
		emp.DOB,
		emp.AvatarURL,
		emp.Department,
		emp.JobTitle,
		emp.HireDate,
		emp.ResignationDate,
		emp.EmploymentType,
		emp.EmploymentStatus,
		emp.BaseSalary,
		emp.ID,
	).Scan(&emp.UpdatedAt)
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	return err
}

func (r *employeeRepositoryImpl) List(ctx context.Context, search *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL`
	args := []interface{}{}
	if search != nil && *search != "" {
		query += ` AND (full_name ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%'
			OR employee_code ILIKE '%' || $1 || '%'
			OR COALESCE(department, '') ILIKE '%' || $1 || '%')`
		args = append(args, *search)
	}
	query += ` ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE deleted_at IS NULL AND employment_status = 'active'
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_code = $1 AND deleted_at IS NULL)`,
		code,
	).Scan(&exists)
	return exists, err
}
