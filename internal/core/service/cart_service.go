package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mycart/commerce-api/internal/core/domain"
	"github.com/mycart/commerce-api/internal/core/ports"
	"github.com/mycart/commerce-api/internal/infrastructure/metrics"
)

type cartService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	locks    *UserLocks
	log      zerolog.Logger
}

// NewCartService returns a CartService implementation. locks must be the
// same table the wishlist service uses, since both rewrite the same user
// document on save.
func NewCartService(users ports.UserRepository, products ports.ProductRepository, locks *UserLocks, log zerolog.Logger) ports.CartService {
	return &cartService{
		users:    users,
		products: products,
		locks:    locks,
		log:      log,
	}
}

func (s *cartService) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.CartItems(), nil
}

// Add puts qty units of the product in the cart. An existing line is
// incremented in place and keeps its original snapshot; a new line embeds a
// fresh snapshot of the catalog record.
func (s *cartService) Add(ctx context.Context, userID, productID string, qty int) ([]domain.CartItem, error) {
	if qty < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if err := user.AddToCart(*product, qty); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("save cart failed")
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	s.log.Info().Str("user_id", userID).Str("product_id", productID).Int("qty", qty).Msg("product added to cart")
	return user.CartItems(), nil
}

// Remove takes one unit (or the whole line) out of the cart. A product that
// is not in the cart leaves it untouched and still answers with the current
// cart; only a changed cart is persisted.
func (s *cartService) Remove(ctx context.Context, userID, productID string, all bool) ([]domain.CartItem, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.RemoveFromCart(productID, all) {
		return user.CartItems(), nil
	}
	if err := s.users.Save(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("save cart failed")
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return user.CartItems(), nil
}
