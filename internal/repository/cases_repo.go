package repository

import (
	"context"
	"database/sql"

	"fairchance-workflow/internal/domain"
)

// CasesRepo cases data access
type CasesRepo struct {
	db DBTX
}

func NewCasesRepo(db DBTX) *CasesRepo {
	return &CasesRepo{db: db}
}

// InsertCase persists a newly opened case
func (r *CasesRepo) InsertCase(ctx context.Context, c *domain.Case) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cases (
			id, tenant_id, employee_id, referral_id,
			assigned_coordinator_id, case_status, opened_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.CaseID,
		c.TenantID,
		c.EmployeeID,
		nullString(c.ReferralID),
		c.AssignedCoordinatorID,
		string(c.Status),
		c.OpenedAt,
	)
	return err
}

// GetCase looks up a case by id across tenants; the caller compares tenants.
// Returns (nil, nil) when the case does not exist.
func (r *CasesRepo) GetCase(ctx context.Context, caseID string) (*domain.Case, error) {
	var (
		c          domain.Case
		referralID sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, employee_id, referral_id,
		        assigned_coordinator_id, case_status, opened_at
		 FROM cases WHERE id = $1`,
		caseID,
	).Scan(&c.CaseID, &c.TenantID, &c.EmployeeID, &referralID,
		&c.AssignedCoordinatorID, &c.Status, &c.OpenedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.ReferralID = referralID.String
	return &c, nil
}
