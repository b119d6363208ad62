package service

import (
	"context"
	"fmt"
	"time"

	"fairchance-workflow/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// CrisisAlert payload delivered to the configured webhook when a crisis
// progress note is recorded
type CrisisAlert struct {
	TenantID      string `json:"tenant_id"`
	NoteID        string `json:"note_id"`
	CaseID        string `json:"case_id"`
	EmployeeID    string `json:"employee_id"`
	CoordinatorID string `json:"coordinator_id"`
	InteractionAt string `json:"interaction_at"`
}

// CrisisAlerter delivers crisis alerts to an external system
type CrisisAlerter interface {
	NotifyCrisisNote(ctx context.Context, alert CrisisAlert) error
}

// CrisisNotifier webhook client for crisis note alerts
type CrisisNotifier struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

// NewCrisisNotifier creates the webhook client, or nil when the webhook is
// disabled or has no URL configured.
func NewCrisisNotifier(cfg config.CrisisWebhookConfig, logger *zap.Logger) *CrisisNotifier {
	if !cfg.Enabled || cfg.URL == "" {
		return nil
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &CrisisNotifier{
		httpClient: client,
		url:        cfg.URL,
		logger:     logger,
	}
}

// NotifyCrisisNote posts the alert to the webhook endpoint
func (c *CrisisNotifier) NotifyCrisisNote(ctx context.Context, alert CrisisAlert) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post crisis alert: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("crisis webhook returned status %d", resp.StatusCode())
	}

	c.logger.Info("crisis alert delivered",
		zap.String("note_id", alert.NoteID),
		zap.String("case_id", alert.CaseID))
	return nil
}
