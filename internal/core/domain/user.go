package domain

import "time"

// CartItem is one cart line: a product snapshot plus a quantity.
type CartItem struct {
	Qty     int     `json:"qty"`
	Product Product `json:"product"`
}

// User is the account aggregate. The wishlist and cart are embedded in the
// user document and persisted with it as one unit; they are only ever
// mutated through the methods below, which maintain two invariants:
//
//   - no two wishlist entries share a product identifier
//   - no two cart lines share a product identifier, and every line has
//     quantity >= 1
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Firstname    string
	Lastname     string
	CreatedAt    time.Time
	Wishlist     []Product
	Cart         []CartItem
}

// View is the public projection of a user. The password hash never leaves
// the aggregate.
type View struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// View returns the serializable public projection of the user.
func (u *User) View() View {
	return View{
		ID:        u.ID,
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
	}
}

// WishlistItems returns the wishlist, never nil.
func (u *User) WishlistItems() []Product {
	if u.Wishlist == nil {
		return []Product{}
	}
	return u.Wishlist
}

// CartItems returns the cart, never nil.
func (u *User) CartItems() []CartItem {
	if u.Cart == nil {
		return []CartItem{}
	}
	return u.Cart
}

// AddToWishlist appends a snapshot of product to the wishlist. Adding a
// product that is already present fails with ErrProductAlreadyInWishlist.
func (u *User) AddToWishlist(product Product) error {
	for _, item := range u.Wishlist {
		if item.ID == product.ID {
			return ErrProductAlreadyInWishlist
		}
	}
	u.Wishlist = append(u.Wishlist, product.Snapshot())
	return nil
}

// RemoveFromWishlist removes the first wishlist entry matching productID.
// The wishlist is deduplicated by invariant, so at most one entry matches.
func (u *User) RemoveFromWishlist(productID string) error {
	for i, item := range u.Wishlist {
		if item.ID == productID {
			u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
			return nil
		}
	}
	return ErrProductNotInWishlist
}

// AddToCart adds qty units of product to the cart. An existing line for the
// same product has its quantity incremented in place and keeps the snapshot
// taken when the line was created. A negative qty fails with
// ErrInvalidQuantity; so does a zero qty for a product not yet in the cart,
// which would otherwise create a line violating the qty >= 1 invariant.
func (u *User) AddToCart(product Product, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	for i := range u.Cart {
		if u.Cart[i].Product.ID == product.ID {
			u.Cart[i].Qty += qty
			return nil
		}
	}
	if qty == 0 {
		return ErrInvalidQuantity
	}
	u.Cart = append(u.Cart, CartItem{Qty: qty, Product: product.Snapshot()})
	return nil
}

// RemoveFromCart removes one unit of productID from the cart, or the whole
// line when all is true or only one unit remains. Removing a product that
// is not in the cart is a no-op. It returns whether the cart changed.
func (u *User) RemoveFromCart(productID string, all bool) bool {
	for i := range u.Cart {
		if u.Cart[i].Product.ID != productID {
			continue
		}
		if !all && u.Cart[i].Qty > 1 {
			u.Cart[i].Qty--
		} else {
			u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
		}
		return true
	}
	return false
}
