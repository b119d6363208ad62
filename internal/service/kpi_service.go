package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"fairchance-workflow/internal/domain"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// KPIService tenant-scoped KPI aggregation (read-only)
type KPIService interface {
	GetKPIs(ctx context.Context, tenantID string) (*KPISnapshot, error)
}

// KPISnapshot tenant rollup derived from current referral/case/note state
type KPISnapshot struct {
	IntakeVolume               int     `json:"intake_volume"`
	CaseOpenCount              int     `json:"case_open_count"`
	EmployeeEngagementCount    int     `json:"employee_engagement_count"`
	ReferralResponseRate       float64 `json:"referral_response_rate"`
	ProgressNoteSubmissionRate float64 `json:"progress_note_submission_rate"`
}

type kpiService struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewKPIService creates a KPIService instance
func NewKPIService(db *sql.DB, logger *zap.Logger) KPIService {
	return &kpiService{db: db, logger: logger}
}

// GetKPIs computes the five tenant KPIs. Rates are 0.0 when their
// denominator is 0 and are rounded to 4 decimal places.
func (s *kpiService) GetKPIs(ctx context.Context, tenantID string) (*KPISnapshot, error) {
	var (
		intakeVolume int
		caseOpen     int
		notesTotal   int
		assigned     int
		responded    int
		notesFinal   int
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM referrals WHERE tenant_id = $1`,
		tenantID,
	).Scan(&intakeVolume)
	if err != nil {
		return nil, fmt.Errorf("count referrals: %w", err)
	}

	openLike := pq.Array([]string{string(domain.CaseOpen), string(domain.CaseActiveSupport)})
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cases WHERE tenant_id = $1 AND case_status = ANY($2)`,
		tenantID, openLike,
	).Scan(&caseOpen)
	if err != nil {
		return nil, fmt.Errorf("count open cases: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM progress_notes WHERE tenant_id = $1`,
		tenantID,
	).Scan(&notesTotal)
	if err != nil {
		return nil, fmt.Errorf("count progress notes: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FILTER (WHERE first_response_at IS NOT NULL), COUNT(*)
		 FROM referrals
		 WHERE tenant_id = $1 AND assigned_coordinator_id IS NOT NULL`,
		tenantID,
	).Scan(&responded, &assigned)
	if err != nil {
		return nil, fmt.Errorf("count assigned referrals: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM progress_notes WHERE tenant_id = $1 AND status = $2`,
		tenantID, string(domain.NoteFinal),
	).Scan(&notesFinal)
	if err != nil {
		return nil, fmt.Errorf("count final notes: %w", err)
	}

	return &KPISnapshot{
		IntakeVolume:               intakeVolume,
		CaseOpenCount:              caseOpen,
		EmployeeEngagementCount:    notesTotal,
		ReferralResponseRate:       rate(responded, assigned),
		ProgressNoteSubmissionRate: rate(notesFinal, notesTotal),
	}, nil
}

// rate returns numerator/denominator rounded to 4 decimals, 0.0 for an
// empty denominator
func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0.0
	}
	return math.Round(float64(numerator)/float64(denominator)*10000) / 10000
}
