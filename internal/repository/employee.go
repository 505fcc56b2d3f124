package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/employees-api/internal/model"
)

// employeeColumns is the select list every query returns. Birthday is
// formatted in SQL so the JSON value never picks up a time component.
const employeeColumns = `id, name, to_char(birthday, 'YYYY-MM-DD'), salary`

// EmployeeRepository stores employees in PostgreSQL.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var e model.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Birthday, &e.Salary); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns every employee ordered by id.
func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Employee, error) {
		e, err := scanEmployee(row)
		if err != nil {
			return model.Employee{}, err
		}
		return *e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan employees: %w", err)
	}

	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}

// GetByID returns the employee with the given id. A missing row yields an
// error wrapping pgx.ErrNoRows.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	return e, nil
}

// Create inserts a new employee and returns it with its assigned id.
func (r *EmployeeRepository) Create(ctx context.Context, fields model.EmployeeFields) (*model.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx, `
		INSERT INTO employees (name, birthday, salary)
		VALUES ($1, $2::text::date, $3)
		RETURNING `+employeeColumns,
		fields.Name, fields.Birthday, fields.Salary))
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

// Update replaces all mutable fields of an employee. A missing row yields
// an error wrapping pgx.ErrNoRows.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, fields model.EmployeeFields) (*model.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx, `
		UPDATE employees
		SET name = $1, birthday = $2::text::date, salary = $3
		WHERE id = $4
		RETURNING `+employeeColumns,
		fields.Name, fields.Birthday, fields.Salary, id))
	if err != nil {
		return nil, fmt.Errorf("update employee %d: %w", id, err)
	}
	return e, nil
}

// DeleteByID removes an employee and reports whether a row existed.
func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete employee %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
