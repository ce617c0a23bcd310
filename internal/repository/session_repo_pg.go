package repository

import (
	"context"
	"time"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.AdminSession) error
	Delete(ctx context.Context, id string) error
	DeleteExpiredBefore(ctx context.Context, deadline time.Time) (int64, error)
}

type PGSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) SessionRepository {
	return &PGSessionRepository{db: db}
}

func (r *PGSessionRepository) Create(ctx context.Context, s *domain.AdminSession) error {
	_, err := r.db.Exec(ctx, `INSERT INTO admin_sessions (id, username, login_time, expires_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Username, s.LoginTime, s.ExpiresAt)
	return err
}

// Delete is unconditional: logging out an unknown session is not an error.
func (r *PGSessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM admin_sessions WHERE id=$1`, id)
	return err
}

func (r *PGSessionRepository) DeleteExpiredBefore(ctx context.Context, deadline time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, deadline)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

var _ SessionRepository = (*PGSessionRepository)(nil)
