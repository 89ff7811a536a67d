package ports

import (
	"context"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

// UserService manages role membership. All operations are admin-only; the
// RBAC middleware enforces that before the service is reached.
type UserService interface {
	// Promote replaces the user's role set with exactly {ADMIN}.
	// Returns false (not an error) when the username does not exist —
	// absence is a normal outcome for a lookup-by-name operation.
	Promote(ctx context.Context, username string) (bool, error)
	// Demote replaces the user's role set with exactly {USER}.
	Demote(ctx context.Context, username string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
