package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mycart/commerce-api/internal/core/domain"
)

const (
	productListKey = "catalog:products"
	productListTTL = 5 * time.Minute
)

// ProductCache caches the catalog list in Redis. The whole list is stored
// as one JSON value under a single key; creates invalidate it.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// GetList returns the cached product list, or (nil, nil) on a miss.
func (c *ProductCache) GetList(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	products := []domain.Product{}
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return products, nil
}

// SetList stores the product list (expires after productListTTL).
func (c *ProductCache) SetList(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, productListKey, raw, productListTTL).Err()
}

// Invalidate drops the cached list.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productListKey).Err()
}
