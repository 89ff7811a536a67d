package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/commercekit/ecommerce-api/internal/api/metrics"
	"github.com/commercekit/ecommerce-api/internal/core/domain"
	"github.com/commercekit/ecommerce-api/internal/core/ports"
)

// UserService implements role management. Promote and demote replace the
// whole role set, so both are idempotent.
type UserService struct {
	repo ports.CredentialRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.CredentialRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Promote replaces the user's role set with exactly {ADMIN}.
func (s *UserService) Promote(ctx context.Context, username string) (bool, error) {
	return s.setRoles(ctx, username, "promote", domain.RoleAdmin)
}

// Demote replaces the user's role set with exactly {USER}.
func (s *UserService) Demote(ctx context.Context, username string) (bool, error) {
	return s.setRoles(ctx, username, "demote", domain.RoleUser)
}

// setRoles returns false with a nil error when the username does not exist:
// absence is an expected outcome of a lookup-by-name, not a fault.
func (s *UserService) setRoles(ctx context.Context, username, action string, role domain.Role) (bool, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.RoleChangesTotal.WithLabelValues(action, "missing_user").Inc()
			return false, nil
		}
		return false, err
	}

	user.Roles = []domain.Role{role}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return false, err
	}

	metrics.RoleChangesTotal.WithLabelValues(action, "applied").Inc()
	s.log.Info().Str("username", username).Str("role", string(role)).Msg("role set replaced")
	return true, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
