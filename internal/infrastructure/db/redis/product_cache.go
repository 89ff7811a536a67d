package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

const productListKey = "cache:products:all"

// ProductCache caches the full product listing as a single JSON blob. The
// listing is read far more often than it changes, and every mutation
// invalidates the whole key, so per-product granularity buys nothing here.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

// Get returns the cached listing. A missing key is a miss, not an error.
func (c *ProductCache) Get(ctx context.Context) ([]*domain.Product, bool, error) {
	payload, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		// Corrupt entry: treat as a miss so the caller refreshes it.
		return nil, false, nil
	}
	return products, true, nil
}

func (c *ProductCache) Set(ctx context.Context, products []*domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, productListKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, productListKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
