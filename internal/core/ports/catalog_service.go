package ports

import (
	"context"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog product.
type CreateProductInput struct {
	Name       string
	Price      *float64
	OldPrice   *float64
	PictureURL string
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	// AttachPicture stores the uploaded file in the object bucket under
	// picture/<id> and records the resulting path and public URL on the
	// product.
	AttachPicture(ctx context.Context, id, filename string, content []byte) (*domain.Product, error)
}
