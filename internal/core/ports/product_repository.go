package ports

import (
	"context"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	// Insert creates a product. A unique-index violation on the name is
	// reported as domain.ErrProductNameTaken.
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// FindByID retrieves a product. A malformed identifier is reported the
	// same way as a missing one: domain.ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns all products. Empty catalog yields an empty slice.
	List(ctx context.Context) ([]domain.Product, error)
	// SetPicture records the stored path and derived URL after an upload.
	SetPicture(ctx context.Context, id, originalFile, path, url string) error
}
