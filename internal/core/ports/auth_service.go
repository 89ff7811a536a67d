package ports

import (
	"context"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account holding exactly the USER role.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// RegisterAdmin creates an account holding exactly the ADMIN role.
	RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token binding
	// the username and current role set.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
