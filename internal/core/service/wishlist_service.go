package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mycart/commerce-api/internal/core/domain"
	"github.com/mycart/commerce-api/internal/core/ports"
	"github.com/mycart/commerce-api/internal/infrastructure/metrics"
)

type wishlistService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	locks    *UserLocks
	log      zerolog.Logger
}

// NewWishlistService returns a WishlistService implementation. locks must be
// the same table the cart service uses, since both rewrite the same user
// document on save.
func NewWishlistService(users ports.UserRepository, products ports.ProductRepository, locks *UserLocks, log zerolog.Logger) ports.WishlistService {
	return &wishlistService{
		users:    users,
		products: products,
		locks:    locks,
		log:      log,
	}
}

func (s *wishlistService) Get(ctx context.Context, userID string) ([]domain.Product, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.WishlistItems(), nil
}

// Add resolves the product against the catalog, appends a snapshot to the
// wishlist, and persists the aggregate. The user is re-read under the
// per-user lock so concurrent mutations cannot lose each other's update.
func (s *wishlistService) Add(ctx context.Context, userID, productID string) ([]domain.Product, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Duplicate check comes first: a product already on the wishlist is a
	// conflict even when it has since vanished from the catalog.
	for _, item := range user.WishlistItems() {
		if item.ID == productID {
			return nil, domain.ErrProductAlreadyInWishlist
		}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if err := user.AddToWishlist(*product); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("save wishlist failed")
		return nil, err
	}

	metrics.WishlistMutationsTotal.WithLabelValues("add").Inc()
	s.log.Info().Str("user_id", userID).Str("product_id", productID).Msg("product added to wishlist")
	return user.WishlistItems(), nil
}

func (s *wishlistService) Remove(ctx context.Context, userID, productID string) ([]domain.Product, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.RemoveFromWishlist(productID); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("save wishlist failed")
		return nil, err
	}

	metrics.WishlistMutationsTotal.WithLabelValues("remove").Inc()
	return user.WishlistItems(), nil
}
