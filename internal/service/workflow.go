package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fairchance-workflow/internal/domain"
	"fairchance-workflow/internal/repository"
)

// utcNow is the workflow clock: UTC wall time at second precision
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// beginSerializable opens the transaction every mutating workflow operation
// runs in. Serializable isolation keeps the resolve-check-write sequence
// atomic: two concurrent conversions of one referral cannot both observe
// first_response_at as unset.
func beginSerializable(ctx context.Context, db *sql.DB) (*sql.Tx, error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

// resolveEmployee loads an employee and enforces tenant equality.
// A true miss is NotFound; an employee under another tenant is reported as
// the generic cross-tenant denial, never as NotFound.
func resolveEmployee(ctx context.Context, repo *repository.EmployeesRepo, tenantID, employeeID string) (*domain.Employee, error) {
	emp, err := repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("lookup employee: %w", err)
	}
	if emp == nil {
		return nil, domain.NewNotFoundError("Employee not found")
	}
	if emp.TenantID != tenantID {
		return nil, domain.NewTenantMismatchError()
	}
	return emp, nil
}
