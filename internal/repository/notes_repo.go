package repository

import (
	"context"

	"fairchance-workflow/internal/domain"

	"github.com/lib/pq"
)

// NotesRepo progress notes data access (append-only)
type NotesRepo struct {
	db DBTX
}

func NewNotesRepo(db DBTX) *NotesRepo {
	return &NotesRepo{db: db}
}

// InsertNote persists a recorded progress note
func (r *NotesRepo) InsertNote(ctx context.Context, n *domain.ProgressNote) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress_notes (
			id, tenant_id, employee_id, case_id, coordinator_id,
			note_type, note_start_date, interaction_at, meeting_location,
			areas_of_need_codes, summary_of_meeting, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		n.NoteID,
		n.TenantID,
		n.EmployeeID,
		n.CaseID,
		n.CoordinatorID,
		string(n.NoteType),
		n.NoteStartDate,
		n.InteractionAt,
		string(n.Location),
		pq.Array(n.AreasOfNeedCodes),
		nullString(n.SummaryOfMeeting),
		string(n.Status),
		n.CreatedAt,
	)
	return err
}
