// Package seed populates the store with the default admin account and the
// starter categories on first boot.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
	"github.com/commercekit/ecommerce-api/internal/core/ports"
	"github.com/commercekit/ecommerce-api/internal/infrastructure/config"
)

var defaultCategories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
}

// Run is idempotent: existing users and categories are left untouched, so it
// is safe to call on every startup. The admin account is only created when a
// password is configured.
func Run(ctx context.Context, auth ports.AuthService, categories ports.CategoryRepository, admin config.AdminConfig, log zerolog.Logger) error {
	if admin.Password == "" {
		log.Warn().Msg("seed: ADMIN_PASSWORD not set, skipping admin account creation")
	} else {
		_, err := auth.RegisterAdmin(ctx, admin.Username, admin.Email, admin.Password)
		switch {
		case err == nil:
			log.Info().Str("username", admin.Username).Msg("seed: admin account created")
		case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
			// Already seeded on a previous boot.
		default:
			return err
		}
	}

	for _, name := range defaultCategories {
		if _, err := categories.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}

		if _, err := categories.Create(ctx, &domain.Category{Name: name}); err != nil {
			if errors.Is(err, domain.ErrCategoryExists) {
				continue
			}
			return err
		}
		log.Info().Str("category", name).Msg("seed: category created")
	}

	return nil
}
