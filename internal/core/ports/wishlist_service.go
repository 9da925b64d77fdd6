package ports

import (
	"context"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// WishlistService exposes the wishlist operations of the user aggregate.
// Mutations resolve the product against the catalog, apply the change, and
// persist the aggregate in a single save.
type WishlistService interface {
	Get(ctx context.Context, userID string) ([]domain.Product, error)
	Add(ctx context.Context, userID, productID string) ([]domain.Product, error)
	Remove(ctx context.Context, userID, productID string) ([]domain.Product, error)
}
