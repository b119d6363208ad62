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

// CaseService case lifecycle, including referral conversion
type CaseService interface {
	OpenCase(ctx context.Context, caller identity.Identity, req OpenCaseRequest) (*OpenCaseResponse, error)
}

// OpenCaseRequest raw case-opening request from the transport
type OpenCaseRequest struct {
	EmployeeID            string `json:"employee_id"`
	AssignedCoordinatorID string `json:"assigned_coordinator_id"`
	ReferralID            string `json:"referral_id"`
}

// OpenCaseResponse new case id and resulting status
type OpenCaseResponse struct {
	CaseID     string `json:"id"`
	CaseStatus string `json:"case_status"`
}

type caseService struct {
	db        *sql.DB
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewCaseService creates a CaseService instance
func NewCaseService(db *sql.DB, publisher events.Publisher, logger *zap.Logger) CaseService {
	return &caseService{
		db:        db,
		publisher: publisher,
		logger:    logger,
		now:       utcNow,
	}
}

// OpenCase creates a case and, when a referral is linked, converts that
// referral in the same transaction: either the case row and the referral
// transition both commit, or neither does.
func (s *caseService) OpenCase(ctx context.Context, caller identity.Identity, req OpenCaseRequest) (*OpenCaseResponse, error) {
	if req.EmployeeID == "" || req.AssignedCoordinatorID == "" {
		return nil, domain.NewValidationError("", "Missing required fields")
	}

	tx, err := beginSerializable(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := resolveEmployee(ctx, repository.NewEmployeesRepo(tx), caller.TenantID, req.EmployeeID); err != nil {
		return nil, err
	}

	openedAt := s.now()

	if req.ReferralID != "" {
		referrals := repository.NewReferralsRepo(tx)
		ref, err := referrals.GetReferral(ctx, req.ReferralID)
		if err != nil {
			return nil, fmt.Errorf("lookup referral: %w", err)
		}
		if ref == nil {
			return nil, domain.NewNotFoundError("Referral not found")
		}
		if ref.TenantID != caller.TenantID {
			return nil, domain.NewTenantMismatchError()
		}
		if ref.EmployeeID != req.EmployeeID {
			return nil, domain.NewMismatchError("Referral/employee mismatch")
		}
		if err := referrals.MarkConverted(ctx, req.ReferralID, openedAt); err != nil {
			return nil, fmt.Errorf("convert referral: %w", err)
		}
	}

	c := &domain.Case{
		CaseID:                uuid.NewString(),
		TenantID:              caller.TenantID,
		EmployeeID:            req.EmployeeID,
		ReferralID:            req.ReferralID,
		AssignedCoordinatorID: req.AssignedCoordinatorID,
		Status:                domain.CaseOpen,
		OpenedAt:              openedAt,
	}
	if err := repository.NewCasesRepo(tx).InsertCase(ctx, c); err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit case: %w", err)
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeCaseOpened,
		TenantID:   caller.TenantID,
		EntityID:   c.CaseID,
		OccurredAt: openedAt,
	})
	s.logger.Info("case opened",
		zap.String("tenant_id", caller.TenantID),
		zap.String("case_id", c.CaseID),
		zap.String("referral_id", req.ReferralID))

	return &OpenCaseResponse{
		CaseID:     c.CaseID,
		CaseStatus: string(c.Status),
	}, nil
}
