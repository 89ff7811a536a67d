package ports

import (
	"context"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// FindByName does an exact, case-sensitive name match and returns
	// domain.ErrCategoryNotFound on a miss.
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	// Create inserts a new category. The store enforces name uniqueness; a
	// conflicting insert returns domain.ErrCategoryExists so callers can
	// retry the lookup instead of assuming single-writer semantics.
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update replaces all mutable fields of the product with the given id.
	// Returns domain.ErrProductNotFound when no row matches.
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// DeleteByID removes the product. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id string) error
}
