package repository

import (
	"context"
	"database/sql"
	"time"

	"fairchance-workflow/internal/domain"

	"github.com/lib/pq"
)

// ReferralsRepo referrals data access
type ReferralsRepo struct {
	db DBTX
}

func NewReferralsRepo(db DBTX) *ReferralsRepo {
	return &ReferralsRepo{db: db}
}

// InsertReferral persists a newly submitted referral
func (r *ReferralsRepo) InsertReferral(ctx context.Context, ref *domain.Referral) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO referrals (
			id, tenant_id, intake_path, source_type, employee_id,
			referral_status, risk_level, support_category_codes,
			submitted_by_user_id, assigned_coordinator_id,
			submitted_at, first_response_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULL)`,
		ref.ReferralID,
		ref.TenantID,
		string(ref.IntakePath),
		string(ref.SourceType),
		ref.EmployeeID,
		string(ref.Status),
		string(ref.RiskLevel),
		pq.Array(ref.SupportCategoryCodes),
		ref.SubmittedByUserID,
		nullString(ref.AssignedCoordinatorID),
		ref.SubmittedAt,
	)
	return err
}

// GetReferral looks up a referral by id across tenants; the caller compares
// tenants. Returns (nil, nil) when the referral does not exist.
func (r *ReferralsRepo) GetReferral(ctx context.Context, referralID string) (*domain.Referral, error) {
	var (
		ref             domain.Referral
		codes           pq.StringArray
		coordinator     sql.NullString
		firstResponseAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, intake_path, source_type, employee_id,
		        referral_status, risk_level, support_category_codes,
		        submitted_by_user_id, assigned_coordinator_id,
		        submitted_at, first_response_at
		 FROM referrals WHERE id = $1`,
		referralID,
	).Scan(
		&ref.ReferralID, &ref.TenantID, &ref.IntakePath, &ref.SourceType, &ref.EmployeeID,
		&ref.Status, &ref.RiskLevel, &codes,
		&ref.SubmittedByUserID, &coordinator,
		&ref.SubmittedAt, &firstResponseAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ref.SupportCategoryCodes = []string(codes)
	ref.AssignedCoordinatorID = coordinator.String
	if firstResponseAt.Valid {
		t := firstResponseAt.Time
		ref.FirstResponseAt = &t
	}
	return &ref, nil
}

// MarkConverted is the guarded referral->case transition.
// Pre: the referral exists (the caller resolved it in the same transaction).
// Post: referral_status = converted_to_case, and first_response_at holds the
// earliest conversion time: it is set to `at` only when currently NULL and is
// never overwritten afterwards, so repeated conversions are idempotent.
func (r *ReferralsRepo) MarkConverted(ctx context.Context, referralID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE referrals
		 SET referral_status = $1,
		     first_response_at = COALESCE(first_response_at, $2)
		 WHERE id = $3`,
		string(domain.ReferralConvertedToCase), at, referralID,
	)
	return err
}
