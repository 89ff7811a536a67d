package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create or fully replace a
// product. Category is a name; the service resolves or creates it.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	ImgURL      string
}

// ProductPatch is a partial update: one optional slot per patchable attribute.
// A nil field means "leave unchanged". Making the set of patchable fields a
// struct keeps unknown keys a compile-time impossibility instead of a
// silently-ignored runtime case.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	ImgURL      *string
	// Category, when set, is resolved (or created) by name and assigned; it
	// is never part of the generic field pass.
	Category *string
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	// Update is a full replacement of all mutable fields; the id is preserved.
	Update(ctx context.Context, id string, input CreateProductInput) (*domain.Product, error)
	Patch(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete is idempotent: deleting a missing product is not an error.
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]*domain.Category, error)
}
