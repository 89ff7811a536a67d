package ports

import (
	"context"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

// CredentialRepository defines the interface for user persistence.
type CredentialRepository interface {
	// Create inserts a new user. Duplicate username or email surfaces as
	// domain.ErrUsernameTaken / domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Save persists changes to an existing user (role replacement).
	Save(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
