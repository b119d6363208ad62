package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fairchance-workflow/internal/domain"
	"fairchance-workflow/internal/events"
	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService progress note recording (append-only)
type NoteService interface {
	RecordNote(ctx context.Context, caller identity.Identity, req RecordNoteRequest) (*RecordNoteResponse, error)
}

// RecordNoteRequest raw progress note from the transport
type RecordNoteRequest struct {
	EmployeeID       string   `json:"employee_id"`
	CaseID           string   `json:"case_id"`
	NoteType         string   `json:"note_type"`
	NoteStartDate    string   `json:"note_start_date"`
	InteractionAt    string   `json:"interaction_at"`
	MeetingLocation  string   `json:"meeting_location"`
	AreasOfNeedCodes []string `json:"areas_of_need_codes"`
	SummaryOfMeeting string   `json:"summary_of_meeting"`
	Status           string   `json:"status"`
}

// RecordNoteResponse new note id and resolved status
type RecordNoteResponse struct {
	NoteID string `json:"id"`
	Status string `json:"status"`
}

type noteService struct {
	db        *sql.DB
	publisher events.Publisher
	alerter   CrisisAlerter // nil when the crisis webhook is disabled
	logger    *zap.Logger
	now       func() time.Time
}

// NewNoteService creates a NoteService instance
func NewNoteService(db *sql.DB, publisher events.Publisher, alerter CrisisAlerter, logger *zap.Logger) NoteService {
	return &noteService{
		db:        db,
		publisher: publisher,
		alerter:   alerter,
		logger:    logger,
		now:       utcNow,
	}
}

// RecordNote validates the note, resolves the case within the caller's
// tenant, checks the case/employee linkage and appends the note. The acting
// coordinator is taken from the caller identity, never from the request.
func (s *noteService) RecordNote(ctx context.Context, caller identity.Identity, req RecordNoteRequest) (*RecordNoteResponse, error) {
	validated, err := domain.ValidateProgressNoteInput(domain.ProgressNoteInput{
		EmployeeID:       req.EmployeeID,
		CaseID:           req.CaseID,
		NoteType:         req.NoteType,
		NoteStartDate:    req.NoteStartDate,
		InteractionAt:    req.InteractionAt,
		MeetingLocation:  req.MeetingLocation,
		AreasOfNeedCodes: req.AreasOfNeedCodes,
		SummaryOfMeeting: req.SummaryOfMeeting,
		Status:           req.Status,
	})
	if err != nil {
		return nil, err
	}

	tx, err := beginSerializable(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	c, err := repository.NewCasesRepo(tx).GetCase(ctx, validated.CaseID)
	if err != nil {
		return nil, fmt.Errorf("lookup case: %w", err)
	}
	if c == nil {
		return nil, domain.NewNotFoundError("Case not found")
	}
	if c.TenantID != caller.TenantID {
		return nil, domain.NewTenantMismatchError()
	}
	if c.EmployeeID != validated.EmployeeID {
		return nil, domain.NewMismatchError("Employee/case mismatch")
	}

	note := &domain.ProgressNote{
		NoteID:           uuid.NewString(),
		TenantID:         caller.TenantID,
		EmployeeID:       validated.EmployeeID,
		CaseID:           validated.CaseID,
		CoordinatorID:    caller.UserID,
		NoteType:         validated.NoteType,
		NoteStartDate:    validated.NoteStartDate,
		InteractionAt:    validated.InteractionAt,
		Location:         validated.Location,
		AreasOfNeedCodes: validated.AreasOfNeedCodes,
		SummaryOfMeeting: validated.SummaryOfMeeting,
		Status:           validated.Status,
		CreatedAt:        s.now(),
	}
	if err := repository.NewNotesRepo(tx).InsertNote(ctx, note); err != nil {
		return nil, fmt.Errorf("insert progress note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit progress note: %w", err)
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeNoteRecorded,
		TenantID:   caller.TenantID,
		EntityID:   note.NoteID,
		OccurredAt: note.CreatedAt,
	})

	if note.NoteType == domain.NoteCrisis && s.alerter != nil {
		alert := CrisisAlert{
			TenantID:      note.TenantID,
			NoteID:        note.NoteID,
			CaseID:        note.CaseID,
			EmployeeID:    note.EmployeeID,
			CoordinatorID: note.CoordinatorID,
			InteractionAt: note.InteractionAt.Format(time.RFC3339),
		}
		if err := s.alerter.NotifyCrisisNote(ctx, alert); err != nil {
			// the note is already committed; a failed alert must not fail it
			s.logger.Warn("crisis webhook delivery failed",
				zap.String("note_id", note.NoteID),
				zap.Error(err))
		}
	}

	s.logger.Info("progress note recorded",
		zap.String("tenant_id", caller.TenantID),
		zap.String("note_id", note.NoteID),
		zap.String("note_type", string(note.NoteType)))

	return &RecordNoteResponse{
		NoteID: note.NoteID,
		Status: string(note.Status),
	}, nil
}
