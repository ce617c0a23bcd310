package admin

import (
	"context"
	"time"

	"github.com/drizz21/rental-tes/config"
	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/drizz21/rental-tes/internal/repository"
	"github.com/google/uuid"
)

type AdminUseCase interface {
	Login(ctx context.Context, username, password string) (*domain.AdminSession, error)
	Logout(ctx context.Context, sessionID string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// AdminService checks a single configured credential pair. Nothing else
// consults the sessions it issues; this is bookkeeping, not authorization.
type AdminService struct {
	sessions repository.SessionRepository
	creds    config.AdminConfig
	now      func() time.Time
}

type AdminServiceOption func(*AdminService)

func WithClock(now func() time.Time) AdminServiceOption {
	return func(s *AdminService) {
		s.now = now
	}
}

func NewAdminService(sessions repository.SessionRepository, creds config.AdminConfig, opts ...AdminServiceOption) *AdminService {
	service := &AdminService{sessions: sessions, creds: creds, now: time.Now}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AdminService) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	if username != s.creds.Username || password != s.creds.Password {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.AdminSession{
		ID:        uuid.NewString(),
		Username:  username,
		LoginTime: now,
		ExpiresAt: now.Add(domain.SessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout never fails on an unknown session id.
func (s *AdminService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AdminService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpiredBefore(ctx, s.now())
}

var _ AdminUseCase = (*AdminService)(nil)
