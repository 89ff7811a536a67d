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

// ProductListCache abstracts the product list cache (Redis). Implementations
// must treat a miss as (nil, false, nil).
type ProductListCache interface {
	Get(ctx context.Context) ([]*domain.Product, bool, error)
	Set(ctx context.Context, products []*domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductService implements catalog management: create, full update, partial
// patch, delete, and lookups, with lookup-or-create category resolution.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	cache      ProductListCache // nil disables caching
	log        zerolog.Logger
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, cache ProductListCache, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, cache: cache, log: log}
}

// Create resolves (or creates) the category by name, then persists a new
// product referencing it.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImgURL:      input.ImgURL,
		Category:    *category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(category.Name).Inc()
	s.invalidateCache(ctx)
	s.log.Info().Str("product_id", created.ID).Str("category", category.Name).Msg("product created")
	return created, nil
}

// Update is a full replacement: every mutable field takes the new value, the
// id and creation time are preserved. Category resolution is identical to
// Create, so an unknown name is created here too.
func (s *ProductService) Update(ctx context.Context, id string, input ports.CreateProductInput) (*domain.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Stock = input.Stock
	existing.ImgURL = input.ImgURL
	existing.Category = *category
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.products.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return updated, nil
}

// Patch overwrites only the fields present in the patch. The category slot is
// handled first — resolve-or-create by name — and never participates in the
// generic field pass.
func (s *ProductService) Patch(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil {
		category, err := s.resolveCategory(ctx, *patch.Category)
		if err != nil {
			return nil, err
		}
		existing.Category = *category
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Stock != nil {
		existing.Stock = *patch.Stock
	}
	if patch.ImgURL != nil {
		existing.ImgURL = *patch.ImgURL
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.products.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return updated, nil
}

// Delete removes the product. Deleting twice is not an error.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// FindAll returns the whole catalog, served from the cache when warm.
func (s *ProductService) FindAll(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("product cache read failed, falling back to store")
		} else if ok {
			metrics.ProductListCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.ProductListCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate product cache")
		}
	}
	return products, nil
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Categories lists all categories.
func (s *ProductService) Categories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAll(ctx)
}

// resolveCategory looks the category up by exact name and creates it on a
// miss. Two concurrent callers can both observe the miss; the store's unique
// index decides the winner and the loser retries the lookup once.
func (s *ProductService) resolveCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categories.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	created, err := s.categories.Create(ctx, &domain.Category{Name: name, CreatedAt: time.Now().UTC()})
	if err == nil {
		metrics.CategoriesAutoCreatedTotal.Inc()
		s.log.Info().Str("category", name).Msg("category auto-created")
		return created, nil
	}
	if errors.Is(err, domain.ErrCategoryExists) {
		// Lost the insert race — the name now exists, fetch the winner.
		return s.categories.FindByName(ctx, name)
	}
	return nil, err
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate product cache")
	}
}

// validateInput enforces the invariants the HTTP boundary already checked.
// Kept here so the service cannot persist garbage when called directly.
func validateInput(input ports.CreateProductInput) error {
	if input.Name == "" || input.Description == "" || input.Category == "" {
		return domain.ErrValidation
	}
	if !input.Price.IsPositive() {
		return domain.ErrValidation
	}
	if input.Stock < 0 {
		return domain.ErrValidation
	}
	return nil
}
