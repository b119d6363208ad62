package domain

// User staff user domain model (users table).
// Token issuance and login live upstream; this service stores the rows the
// dev seed creates and records user ids on referrals and notes.
type User struct {
	UserID   string `db:"id"`        // PRIMARY KEY
	TenantID string `db:"tenant_id"` // NOT NULL
	Email    string `db:"email"`     // NOT NULL
	Role     string `db:"role"`      // NOT NULL (company_admin/coordinator/manager)
}
