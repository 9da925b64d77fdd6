package ports

import (
	"context"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// CartService exposes the cart operations of the user aggregate.
type CartService interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Add(ctx context.Context, userID, productID string, qty int) ([]domain.CartItem, error)
	// Remove decrements the line for productID by one, or drops it entirely
	// when all is true or a single unit remains. An absent product is a
	// silent no-op.
	Remove(ctx context.Context, userID, productID string, all bool) ([]domain.CartItem, error)
}
