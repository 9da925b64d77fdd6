package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mycart/commerce-api/internal/core/domain"
	"github.com/mycart/commerce-api/internal/core/ports"
)

// slowUserRepo adds a store round-trip delay to reads, widening the window
// between a read and the save that follows it.
type slowUserRepo struct {
	*stubUserRepo
	delay time.Duration
}

func (r *slowUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	time.Sleep(r.delay)
	return r.stubUserRepo.FindByID(ctx, id)
}

func cartFixture() (*stubUserRepo, *stubProductRepo, *domain.User, ports.CartService) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	user := users.seed(&domain.User{ID: "u1", Email: "pepe@example.com"})
	products.seed(domain.Product{ID: "p1", Name: "Macbook Pro", Price: 30000, OldPrice: 35000})
	products.seed(domain.Product{ID: "p2", Name: "Auriculares Sony", Price: 2500, OldPrice: 2650})
	svc := NewCartService(users, products, NewUserLocks(), zerolog.Nop())
	return users, products, user, svc
}

func TestCartService_Scenario(t *testing.T) {
	users, _, user, svc := cartFixture()
	ctx := context.Background()

	cart, err := svc.Add(ctx, user.ID, "p1", 2)
	if err != nil {
		t.Fatalf("add qty 2: %v", err)
	}
	if len(cart) != 1 || cart[0].Qty != 2 || cart[0].Product.ID != "p1" {
		t.Fatalf("expected [{qty:2, product:p1}], got %+v", cart)
	}

	cart, err = svc.Add(ctx, user.ID, "p1", 3)
	if err != nil {
		t.Fatalf("add qty 3: %v", err)
	}
	if len(cart) != 1 || cart[0].Qty != 5 {
		t.Fatalf("expected [{qty:5}], got %+v", cart)
	}

	cart, err = svc.Remove(ctx, user.ID, "p1", false)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart) != 1 || cart[0].Qty != 4 {
		t.Fatalf("expected [{qty:4}], got %+v", cart)
	}

	cart, err = svc.Remove(ctx, user.ID, "p1", true)
	if err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}

	// add(2), add(3), remove, remove-all: four persisted mutations
	if users.saves != 4 {
		t.Fatalf("expected 4 saves, got %d", users.saves)
	}
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	users, _, user, svc := cartFixture()

	if _, err := svc.Add(context.Background(), user.ID, "missing", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if users.saves != 0 {
		t.Fatalf("failed add must not persist, saves=%d", users.saves)
	}
}

func TestCartService_Add_NegativeQuantity(t *testing.T) {
	_, _, user, svc := cartFixture()

	if _, err := svc.Add(context.Background(), user.ID, "p1", -3); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCartService_Add_ZeroQuantityOnNewLine(t *testing.T) {
	users, _, user, svc := cartFixture()

	if _, err := svc.Add(context.Background(), user.ID, "p1", 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if users.saves != 0 {
		t.Fatalf("rejected add must not persist, saves=%d", users.saves)
	}
}

func TestCartService_Remove_AbsentProductIsNoOp(t *testing.T) {
	users, _, user, svc := cartFixture()
	ctx := context.Background()

	_, _ = svc.Add(ctx, user.ID, "p1", 1)

	cart, err := svc.Remove(ctx, user.ID, "p2", false)
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(cart) != 1 || cart[0].Product.ID != "p1" {
		t.Fatalf("cart changed on no-op remove: %+v", cart)
	}
	if users.saves != 1 {
		t.Fatalf("no-op remove must not persist, saves=%d", users.saves)
	}
}

func TestCartService_Get_EmptyIsNotNil(t *testing.T) {
	_, _, user, svc := cartFixture()

	cart, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cart == nil || len(cart) != 0 {
		t.Fatalf("expected empty non-nil cart, got %+v", cart)
	}
}

func TestCartService_ConcurrentAddsAreSerialized(t *testing.T) {
	users, _, user, svc := cartFixture()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Add(ctx, user.ID, "p1", 1); err != nil {
				t.Errorf("concurrent add failed: %v", err)
			}
		}()
	}
	wg.Wait()

	cart, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(cart) != 1 || cart[0].Qty != workers {
		t.Fatalf("lost update: expected single line with qty %d, got %+v", workers, cart)
	}
	if users.saves != workers {
		t.Fatalf("expected %d saves, got %d", workers, users.saves)
	}
}

// Cart and wishlist writes replace the same user document, so a cart
// mutation racing a wishlist mutation must serialize on the shared lock
// table or the later save erases the earlier one.
func TestCartAndWishlistService_ShareUserSerialization(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	user := users.seed(&domain.User{ID: "u1", Email: "pepe@example.com"})
	products.seed(domain.Product{ID: "p1", Name: "Macbook Pro", Price: 30000, OldPrice: 35000})
	products.seed(domain.Product{ID: "p2", Name: "Auriculares Sony", Price: 2500, OldPrice: 2650})

	slow := &slowUserRepo{stubUserRepo: users, delay: 5 * time.Millisecond}
	locks := NewUserLocks()
	carts := NewCartService(slow, products, locks, zerolog.Nop())
	wishes := NewWishlistService(slow, products, locks, zerolog.Nop())

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := carts.Add(ctx, user.ID, "p1", 1); err != nil {
			t.Errorf("cart add failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := wishes.Add(ctx, user.ID, "p2"); err != nil {
			t.Errorf("wishlist add failed: %v", err)
		}
	}()
	wg.Wait()

	final, err := users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(final.Cart) != 1 || len(final.Wishlist) != 1 {
		t.Fatalf("lost update: cart=%d wishlist=%d after both mutations succeeded", len(final.Cart), len(final.Wishlist))
	}
}

func TestCartService_InvariantsAfterMixedMutations(t *testing.T) {
	_, _, user, svc := cartFixture()
	ctx := context.Background()

	_, _ = svc.Add(ctx, user.ID, "p1", 2)
	_, _ = svc.Add(ctx, user.ID, "p2", 1)
	_, _ = svc.Add(ctx, user.ID, "p1", 1)
	_, _ = svc.Remove(ctx, user.ID, "p2", false)
	_, _ = svc.Remove(ctx, user.ID, "p2", false)
	cart, _ := svc.Add(ctx, user.ID, "p2", 4)

	seen := map[string]bool{}
	for _, item := range cart {
		if item.Qty < 1 {
			t.Fatalf("line %s has qty %d", item.Product.ID, item.Qty)
		}
		if seen[item.Product.ID] {
			t.Fatalf("duplicate line for %s", item.Product.ID)
		}
		seen[item.Product.ID] = true
	}
}
