package ports

import (
	"context"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email     string
	Password  string
	Firstname string
	Lastname  string
}

// AuthService implements registration and session-token issuance.
type AuthService interface {
	// Authenticate verifies credentials and returns a signed session token
	// plus the public view of the user.
	Authenticate(ctx context.Context, email, password string) (string, domain.View, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
