package domain

import "time"

// Case support case domain model (cases table).
// Optionally linked to the referral it was converted from; when linked, the
// referral's employee and tenant must match the case's.
type Case struct {
	CaseID   string `db:"id"`        // UUID, PRIMARY KEY
	TenantID string `db:"tenant_id"` // NOT NULL

	EmployeeID string `db:"employee_id"` // NOT NULL, same tenant
	ReferralID string `db:"referral_id"` // nullable

	AssignedCoordinatorID string `db:"assigned_coordinator_id"` // NOT NULL

	Status   CaseStatus `db:"case_status"` // NOT NULL
	OpenedAt time.Time  `db:"opened_at"`   // NOT NULL
}
