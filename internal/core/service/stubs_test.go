package service

import (
	"context"
	"fmt"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Wishlist = append([]domain.Product(nil), u.Wishlist...)
	clone.Cart = append([]domain.CartItem(nil), u.Cart...)
	return &clone
}

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by id
	findErr   error                   // if set, lookups return this error
	insertErr error                   // if set, Insert returns this error
	saveErr   error                   // if set, Save returns this error
	saves     int                     // persistence calls observed
	nextID    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailAlreadyUsed
		}
	}
	clone := cloneUser(user)
	r.nextID++
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.users[user.ID] = cloneUser(user)
	return nil
}

// seed inserts a user directly, bypassing the service layer.
func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	r.users[u.ID] = cloneUser(u)
	return u
}

type stubProductRepo struct {
	products map[string]*domain.Product
	pictures map[string][3]string // id -> {original, path, url}
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[string]*domain.Product),
		pictures: make(map[string][3]string),
	}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return nil, domain.ErrProductNameTaken
		}
	}
	clone := *p
	r.nextID++
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) SetPicture(_ context.Context, id, originalFile, path, url string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	r.pictures[id] = [3]string{originalFile, path, url}
	p.Picture = &domain.Picture{OriginalFile: originalFile, Path: path, URL: url}
	p.PictureURL = url
	return nil
}

// seed inserts a product directly with a fixed id.
func (r *stubProductRepo) seed(p domain.Product) domain.Product {
	r.products[p.ID] = &p
	return p
}
