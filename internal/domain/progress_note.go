package domain

import "time"

// ProgressNote progress note domain model (progress_notes table).
// Append-only record of one coordinator-employee interaction within a case.
type ProgressNote struct {
	NoteID   string `db:"id"`        // UUID, PRIMARY KEY
	TenantID string `db:"tenant_id"` // NOT NULL

	EmployeeID    string `db:"employee_id"`    // NOT NULL, must match the case's employee
	CaseID        string `db:"case_id"`        // NOT NULL, same tenant
	CoordinatorID string `db:"coordinator_id"` // NOT NULL, acting identity

	NoteType      NoteType        `db:"note_type"`       // NOT NULL
	NoteStartDate string          `db:"note_start_date"` // DATE, YYYY-MM-DD
	InteractionAt time.Time       `db:"interaction_at"`  // NOT NULL
	Location      MeetingLocation `db:"meeting_location"`

	// AreasOfNeedCodes ordered; stored as TEXT[]
	AreasOfNeedCodes []string `db:"areas_of_need_codes"`

	SummaryOfMeeting string     `db:"summary_of_meeting"` // nullable
	Status           NoteStatus `db:"status"`             // NOT NULL, defaults to draft
	CreatedAt        time.Time  `db:"created_at"`         // NOT NULL
}
