package domain

import "time"

// Referral referral domain model (referrals table).
// Tenant-scoped; status moves submitted -> converted_to_case exactly once.
type Referral struct {
	ReferralID string `db:"id"`        // UUID, PRIMARY KEY
	TenantID   string `db:"tenant_id"` // NOT NULL

	IntakePath IntakePath `db:"intake_path"` // NOT NULL
	SourceType SourceType `db:"source_type"` // NOT NULL
	EmployeeID string     `db:"employee_id"` // NOT NULL, same tenant
	RiskLevel  RiskLevel  `db:"risk_level"`  // NOT NULL

	Status ReferralStatus `db:"referral_status"` // NOT NULL

	// SupportCategoryCodes ordered, non-empty; stored as TEXT[]
	SupportCategoryCodes []string `db:"support_category_codes"`

	SubmittedByUserID     string `db:"submitted_by_user_id"`    // NOT NULL
	AssignedCoordinatorID string `db:"assigned_coordinator_id"` // nullable

	SubmittedAt time.Time `db:"submitted_at"` // NOT NULL, immutable
	// FirstResponseAt set once when the first case converts this referral;
	// never overwritten afterwards (first-write-wins).
	FirstResponseAt *time.Time `db:"first_response_at"` // nullable
}
