package service

import (
	"context"
	"database/sql"
	"fmt"

	"fairchance-workflow/internal/domain"
	"fairchance-workflow/internal/repository"

	"go.uber.org/zap"
)

// SeedService dev-only data bootstrap, mirrored by POST /api/v1/dev/seed
type SeedService interface {
	SeedDevData(ctx context.Context, tenantID string) (*SeedResult, error)
}

// SeedResult how many rows the seed ensured exist
type SeedResult struct {
	Users     int `json:"users"`
	Employees int `json:"employees"`
}

type seedService struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSeedService creates a SeedService instance
func NewSeedService(db *sql.DB, logger *zap.Logger) SeedService {
	return &seedService{db: db, logger: logger}
}

// SeedDevData inserts the demo staff users and employees into the caller's
// tenant. Idempotent: existing rows are left untouched.
func (s *seedService) SeedDevData(ctx context.Context, tenantID string) (*SeedResult, error) {
	users := repository.NewUsersRepo(s.db)
	for _, u := range []domain.User{
		{UserID: "u-admin", TenantID: tenantID, Email: "admin@example.com", Role: "company_admin"},
		{UserID: "u-coord", TenantID: tenantID, Email: "coord@example.com", Role: "coordinator"},
		{UserID: "u-manager", TenantID: tenantID, Email: "manager@example.com", Role: "manager"},
	} {
		if err := users.UpsertUser(ctx, &u); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.UserID, err)
		}
	}

	employees := repository.NewEmployeesRepo(s.db)
	for _, e := range []domain.Employee{
		{EmployeeID: "e-1", TenantID: tenantID, FirstName: "Ava", LastName: "Reed", Email: "ava@example.com"},
		{EmployeeID: "e-2", TenantID: tenantID, FirstName: "Noah", LastName: "Cole", Email: "noah@example.com"},
	} {
		if err := employees.UpsertEmployee(ctx, &e); err != nil {
			return nil, fmt.Errorf("seed employee %s: %w", e.EmployeeID, err)
		}
	}

	s.logger.Info("dev data seeded", zap.String("tenant_id", tenantID))
	return &SeedResult{Users: 3, Employees: 2}, nil
}
