package repository

import (
	"context"

	"fairchance-workflow/internal/domain"
)

// UsersRepo staff users data access
type UsersRepo struct {
	db DBTX
}

func NewUsersRepo(db DBTX) *UsersRepo {
	return &UsersRepo{db: db}
}

// UpsertUser inserts a user if absent (dev seed)
func (r *UsersRepo) UpsertUser(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, tenant_id, email, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		user.UserID, user.TenantID, user.Email, user.Role,
	)
	return err
}
