package domain

// Employee employee domain model (employees table).
// Created by an external provisioning process; immutable for this service.
type Employee struct {
	EmployeeID string `db:"id"`        // UUID or seeded id, PRIMARY KEY
	TenantID   string `db:"tenant_id"` // NOT NULL
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	Email      string `db:"email"` // nullable
}
