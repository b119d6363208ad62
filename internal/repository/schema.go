package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema bootstrap. The service owns its five tables and creates them on
// startup, so a fresh database is usable without a separate migration step.
// Multi-valued code fields are TEXT[] columns: codes round-trip losslessly
// regardless of their characters (no join/split encoding).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS referrals (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		intake_path TEXT NOT NULL,
		source_type TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		referral_status TEXT NOT NULL,
		risk_level TEXT NOT NULL,
		support_category_codes TEXT[] NOT NULL,
		submitted_by_user_id TEXT NOT NULL,
		assigned_coordinator_id TEXT,
		submitted_at TIMESTAMPTZ NOT NULL,
		first_response_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS cases (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		referral_id TEXT,
		assigned_coordinator_id TEXT NOT NULL,
		case_status TEXT NOT NULL,
		opened_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS progress_notes (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		case_id TEXT NOT NULL,
		coordinator_id TEXT NOT NULL,
		note_type TEXT NOT NULL,
		note_start_date DATE NOT NULL,
		interaction_at TIMESTAMPTZ NOT NULL,
		meeting_location TEXT NOT NULL,
		areas_of_need_codes TEXT[] NOT NULL,
		summary_of_meeting TEXT,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_tenant ON employees (tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_referrals_tenant ON referrals (tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cases_tenant ON cases (tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_notes_tenant ON progress_notes (tenant_id)`,
}

// InitSchema creates the workflow tables if they don't exist yet
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
