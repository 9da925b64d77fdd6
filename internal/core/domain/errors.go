package domain

import "net/http"

// Error is a machine-distinguishable fault raised by the core. Code carries
// the legacy numeric API error code (0 when the fault predates the scheme)
// and Status the HTTP status the API layer should answer with. Fields names
// the offending request fields, e.g. ["email"].
type Error struct {
	Code    int
	Status  int
	Message string
	Fields  []string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrCantCreateUser            = &Error{Code: 1000000, Status: http.StatusBadRequest, Message: "Can't create new user."}
	ErrEmailAlreadyUsed          = &Error{Code: 1000001, Status: http.StatusConflict, Message: "A user with that email already exists.", Fields: []string{"email"}}
	ErrInvalidCredentials        = &Error{Code: 1000100, Status: http.StatusUnauthorized, Message: "Invalid credentials."}
	ErrAuthenticationUnavailable = &Error{Code: 1000101, Status: http.StatusInternalServerError, Message: "There was a problem on authenticate user."}
	ErrInvalidToken              = &Error{Code: 1000301, Status: http.StatusForbidden, Message: "Invalid token.", Fields: []string{"activation_token"}}

	ErrProductNotFound          = &Error{Status: http.StatusBadRequest, Message: "Product not found"}
	ErrProductAlreadyInWishlist = &Error{Status: http.StatusConflict, Message: "Product already exists in the wishlist"}
	ErrProductNotInWishlist     = &Error{Status: http.StatusBadRequest, Message: "Product does not exist in your wishlist"}
	ErrInvalidQuantity          = &Error{Status: http.StatusBadRequest, Message: "Quantity cannot be negative"}

	// ErrUserNotFound is internal to the auth flow; it is never exposed
	// directly so that a probe cannot distinguish an unknown email from a
	// wrong password.
	ErrUserNotFound = &Error{Status: http.StatusUnauthorized, Message: "user not found"}
)

// ErrProductNameTaken is returned by the catalog store when an insert hits
// the unique index on the product name.
var ErrProductNameTaken = NewValidationFailed("name")

// NewValidationFailed reports that one or more input fields failed
// validation.
func NewValidationFailed(fields ...string) *Error {
	return &Error{
		Code:    1000002,
		Status:  http.StatusBadRequest,
		Message: "Validation failed.",
		Fields:  fields,
	}
}
