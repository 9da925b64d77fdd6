package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mycart/commerce-api/internal/core/domain"
	"github.com/mycart/commerce-api/internal/core/ports"
	"github.com/mycart/commerce-api/internal/infrastructure/metrics"
)

// ProductCache abstracts the catalog list cache (Redis). A miss is
// (nil, nil); cache failures are logged and treated as misses.
type ProductCache interface {
	GetList(ctx context.Context) ([]domain.Product, error)
	SetList(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// PictureStore abstracts the object bucket uploads (S3). Upload stores
// content under key and returns the stored path; PublicURL derives the
// client-facing URL for a stored path.
type PictureStore interface {
	Upload(ctx context.Context, key string, content []byte) (string, error)
	PublicURL(storedPath string) string
}

type catalogService struct {
	repo     ports.ProductRepository
	cache    ProductCache
	pictures PictureStore
	log      zerolog.Logger
}

// NewCatalogService returns a CatalogService implementation. cache and
// pictures may be nil (the seeder runs without either).
func NewCatalogService(repo ports.ProductRepository, cache ProductCache, pictures PictureStore, log zerolog.Logger) ports.CatalogService {
	return &catalogService{repo: repo, cache: cache, pictures: pictures, log: log}
}

// Create validates and inserts a new catalog product.
func (s *catalogService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	var fields []string
	name := strings.TrimSpace(input.Name)
	if name == "" {
		fields = append(fields, "name")
	}
	if input.Price == nil {
		fields = append(fields, "price")
	}
	if input.OldPrice == nil {
		fields = append(fields, "oldPrice")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationFailed(fields...)
	}

	product := &domain.Product{
		Name:       name,
		Price:      *input.Price,
		OldPrice:   *input.OldPrice,
		PictureURL: input.PictureURL,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrProductNameTaken) {
			return nil, domain.ErrProductNameTaken
		}
		s.log.Error().Err(err).Str("name", name).Msg("insert product failed")
		return nil, err
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List serves the catalog from the cache when possible, falling back to the
// store on a miss or cache failure.
func (s *catalogService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed")
		} else if cached != nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, products); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

// AttachPicture uploads the file to the bucket under picture/<id> and
// records the stored path and derived URL on the product.
func (s *catalogService) AttachPicture(ctx context.Context, id, filename string, content []byte) (*domain.Product, error) {
	if s.pictures == nil {
		return nil, errors.New("picture store not configured")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := path.Join("picture", product.ID)
	storedPath, err := s.pictures.Upload(ctx, key, content)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("picture upload failed")
		return nil, err
	}

	url := s.pictures.PublicURL(storedPath)
	if err := s.repo.SetPicture(ctx, product.ID, filename, storedPath, url); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("product_id", id).Str("path", storedPath).Msg("picture attached")
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
