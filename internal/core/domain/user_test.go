package domain

import "testing"

func product(id, name string) Product {
	return Product{ID: id, Name: name, Price: 100, OldPrice: 120}
}

func TestUser_AddToWishlist_NoDuplicates(t *testing.T) {
	u := &User{}

	if err := u.AddToWishlist(product("p1", "Macbook Pro")); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := u.AddToWishlist(product("p2", "Notebook MSI")); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if err := u.AddToWishlist(product("p1", "Macbook Pro")); err != ErrProductAlreadyInWishlist {
		t.Fatalf("expected ErrProductAlreadyInWishlist, got %v", err)
	}

	seen := map[string]bool{}
	for _, item := range u.WishlistItems() {
		if seen[item.ID] {
			t.Fatalf("duplicate product %s in wishlist", item.ID)
		}
		seen[item.ID] = true
	}
	if len(u.Wishlist) != 2 {
		t.Fatalf("expected 2 wishlist entries, got %d", len(u.Wishlist))
	}
}

func TestUser_RemoveFromWishlist_SecondRemoveFails(t *testing.T) {
	u := &User{}
	_ = u.AddToWishlist(product("p1", "Tablet Xperia"))

	if err := u.RemoveFromWishlist("p1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := u.RemoveFromWishlist("p1"); err != ErrProductNotInWishlist {
		t.Fatalf("expected ErrProductNotInWishlist on second remove, got %v", err)
	}
	if len(u.WishlistItems()) != 0 {
		t.Fatalf("expected empty wishlist, got %d entries", len(u.Wishlist))
	}
}

func TestUser_WishlistSnapshotIsACopy(t *testing.T) {
	u := &User{}
	p := product("p1", "Rekam")
	_ = u.AddToWishlist(p)

	p.Price = 1
	p.Name = "renamed"

	if got := u.Wishlist[0]; got.Price != 100 || got.Name != "Rekam" {
		t.Fatalf("wishlist entry followed catalog edit: %+v", got)
	}
}

func TestUser_CartScenario(t *testing.T) {
	u := &User{}
	p := product("p1", "Macbook Pro")

	if err := u.AddToCart(p, 2); err != nil {
		t.Fatalf("add qty 2: %v", err)
	}
	if len(u.Cart) != 1 || u.Cart[0].Qty != 2 {
		t.Fatalf("expected [{qty:2}], got %+v", u.Cart)
	}

	if err := u.AddToCart(p, 3); err != nil {
		t.Fatalf("add qty 3: %v", err)
	}
	if len(u.Cart) != 1 || u.Cart[0].Qty != 5 {
		t.Fatalf("expected [{qty:5}], got %+v", u.Cart)
	}

	if !u.RemoveFromCart("p1", false) {
		t.Fatalf("expected cart to change")
	}
	if u.Cart[0].Qty != 4 {
		t.Fatalf("expected qty 4 after decrement, got %d", u.Cart[0].Qty)
	}

	if !u.RemoveFromCart("p1", true) {
		t.Fatalf("expected cart to change")
	}
	if len(u.CartItems()) != 0 {
		t.Fatalf("expected empty cart, got %+v", u.Cart)
	}
}

func TestUser_AddToCart_RejectsBadQuantities(t *testing.T) {
	u := &User{}
	p := product("p1", "Auriculares Sony")

	if err := u.AddToCart(p, -1); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for negative qty, got %v", err)
	}
	// Zero on a product not yet in the cart would create a qty-0 line.
	if err := u.AddToCart(p, 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for zero qty on new line, got %v", err)
	}

	_ = u.AddToCart(p, 1)
	// Zero on an existing line is an increment by zero.
	if err := u.AddToCart(p, 0); err != nil {
		t.Fatalf("zero qty on existing line should be a no-op, got %v", err)
	}
	if u.Cart[0].Qty != 1 {
		t.Fatalf("expected qty unchanged at 1, got %d", u.Cart[0].Qty)
	}
}

func TestUser_CartInvariantsHoldAcrossMutations(t *testing.T) {
	u := &User{}
	p1 := product("p1", "Smartphone Samsung")
	p2 := product("p2", "Notebook MSI")

	_ = u.AddToCart(p1, 2)
	_ = u.AddToCart(p2, 1)
	_ = u.AddToCart(p1, 1)
	u.RemoveFromCart("p2", false)
	u.RemoveFromCart("p2", false) // no-op, p2 already gone
	_ = u.AddToCart(p2, 4)

	seen := map[string]bool{}
	for _, item := range u.CartItems() {
		if item.Qty < 1 {
			t.Fatalf("cart line %s has qty %d", item.Product.ID, item.Qty)
		}
		if seen[item.Product.ID] {
			t.Fatalf("duplicate cart line for %s", item.Product.ID)
		}
		seen[item.Product.ID] = true
	}
}

func TestUser_RemoveFromCart_AbsentProductIsNoOp(t *testing.T) {
	u := &User{}
	_ = u.AddToCart(product("p1", "Rekam"), 1)

	if u.RemoveFromCart("missing", false) {
		t.Fatalf("expected no-op for absent product")
	}
	if len(u.Cart) != 1 {
		t.Fatalf("cart changed on no-op remove: %+v", u.Cart)
	}
}

func TestUser_CartKeepsOriginalSnapshotOnIncrement(t *testing.T) {
	u := &User{}
	p := product("p1", "Tablet Xperia")
	_ = u.AddToCart(p, 1)

	p.Price = 9999
	_ = u.AddToCart(p, 2)

	if u.Cart[0].Product.Price != 100 {
		t.Fatalf("increment re-snapshotted the product: %+v", u.Cart[0].Product)
	}
	if u.Cart[0].Qty != 3 {
		t.Fatalf("expected qty 3, got %d", u.Cart[0].Qty)
	}
}

func TestUser_View_OmitsPassword(t *testing.T) {
	u := &User{ID: "u1", Email: "a@b.co", PasswordHash: "$2a$hash", Firstname: "Pepe", Lastname: "Argento"}
	v := u.View()
	if v.ID != "u1" || v.Email != "a@b.co" || v.Firstname != "Pepe" || v.Lastname != "Argento" {
		t.Fatalf("unexpected view: %+v", v)
	}
}
