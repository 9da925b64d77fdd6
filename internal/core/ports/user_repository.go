package ports

import (
	"context"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user aggregate.
// The aggregate (user plus embedded wishlist and cart) is always written as
// one document; Save replaces it wholesale.
type UserRepository interface {
	// FindByEmail performs a case-sensitive exact match on the stored email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Insert creates a new user. A unique-index violation on the email is
	// reported as domain.ErrEmailAlreadyUsed.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}
