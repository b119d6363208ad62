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

// ReferralService referral intake and lifecycle
type ReferralService interface {
	SubmitReferral(ctx context.Context, caller identity.Identity, req SubmitReferralRequest) (*SubmitReferralResponse, error)
}

// SubmitReferralRequest raw referral submission from the transport
type SubmitReferralRequest struct {
	IntakePath            string   `json:"intake_path"`
	SourceType            string   `json:"source_type"`
	EmployeeID            string   `json:"employee_id"`
	RiskLevel             string   `json:"risk_level"`
	SupportCategoryCodes  []string `json:"support_category_codes"`
	AssignedCoordinatorID string   `json:"assigned_coordinator_id"`
}

// SubmitReferralResponse new referral id and resulting status
type SubmitReferralResponse struct {
	ReferralID     string `json:"id"`
	ReferralStatus string `json:"referral_status"`
}

type referralService struct {
	db        *sql.DB
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewReferralService creates a ReferralService instance
func NewReferralService(db *sql.DB, publisher events.Publisher, logger *zap.Logger) ReferralService {
	return &referralService{
		db:        db,
		publisher: publisher,
		logger:    logger,
		now:       utcNow,
	}
}

// SubmitReferral validates the submission, resolves the employee within the
// caller's tenant and persists a new referral in `submitted` state with
// first_response_at unset. Nothing is persisted on any failure.
func (s *referralService) SubmitReferral(ctx context.Context, caller identity.Identity, req SubmitReferralRequest) (*SubmitReferralResponse, error) {
	validated, err := domain.ValidateReferralIntake(domain.ReferralIntake{
		IntakePath:            req.IntakePath,
		SourceType:            req.SourceType,
		EmployeeID:            req.EmployeeID,
		RiskLevel:             req.RiskLevel,
		SupportCategoryCodes:  req.SupportCategoryCodes,
		AssignedCoordinatorID: req.AssignedCoordinatorID,
	})
	if err != nil {
		return nil, err
	}

	tx, err := beginSerializable(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := resolveEmployee(ctx, repository.NewEmployeesRepo(tx), caller.TenantID, validated.EmployeeID); err != nil {
		return nil, err
	}

	ref := &domain.Referral{
		ReferralID:            uuid.NewString(),
		TenantID:              caller.TenantID,
		IntakePath:            validated.IntakePath,
		SourceType:            validated.SourceType,
		EmployeeID:            validated.EmployeeID,
		Status:                domain.ReferralSubmitted,
		RiskLevel:             validated.RiskLevel,
		SupportCategoryCodes:  validated.SupportCategoryCodes,
		SubmittedByUserID:     caller.UserID,
		AssignedCoordinatorID: validated.AssignedCoordinatorID,
		SubmittedAt:           s.now(),
	}
	if err := repository.NewReferralsRepo(tx).InsertReferral(ctx, ref); err != nil {
		return nil, fmt.Errorf("insert referral: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit referral: %w", err)
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeReferralSubmitted,
		TenantID:   caller.TenantID,
		EntityID:   ref.ReferralID,
		OccurredAt: ref.SubmittedAt,
	})
	s.logger.Info("referral submitted",
		zap.String("tenant_id", caller.TenantID),
		zap.String("referral_id", ref.ReferralID),
		zap.String("risk_level", string(ref.RiskLevel)))

	return &SubmitReferralResponse{
		ReferralID:     ref.ReferralID,
		ReferralStatus: string(ref.Status),
	}, nil
}
