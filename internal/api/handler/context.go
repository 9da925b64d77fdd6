package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mycart/commerce-api/internal/api/middleware"
	"github.com/mycart/commerce-api/internal/core/domain"
)

// currentUser extracts the aggregate injected by the Auth middleware. Its
// presence proves the middleware ran; a missing user means a route was
// wired without the middleware, which is answered like a bad token rather
// than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.CurrentUserKey).(*domain.User)
	if user == nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}
