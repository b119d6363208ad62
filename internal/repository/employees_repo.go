package repository

import (
	"context"
	"database/sql"

	"fairchance-workflow/internal/domain"
)

// EmployeesRepo employees data access
type EmployeesRepo struct {
	db DBTX
}

func NewEmployeesRepo(db DBTX) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

// GetEmployee looks up an employee by id across tenants; the caller compares
// tenants so cross-tenant probes can be distinguished from true misses.
// Returns (nil, nil) when the employee does not exist.
func (r *EmployeesRepo) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	var (
		emp   domain.Employee
		email sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, first_name, last_name, email
		 FROM employees WHERE id = $1`,
		employeeID,
	).Scan(&emp.EmployeeID, &emp.TenantID, &emp.FirstName, &emp.LastName, &email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	emp.Email = email.String
	return &emp, nil
}

// UpsertEmployee inserts an employee if absent (dev seed)
func (r *EmployeesRepo) UpsertEmployee(ctx context.Context, emp *domain.Employee) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, tenant_id, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		emp.EmployeeID, emp.TenantID, emp.FirstName, emp.LastName, nullString(emp.Email),
	)
	return err
}
