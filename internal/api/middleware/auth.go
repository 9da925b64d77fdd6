package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mycart/commerce-api/internal/core/domain"
	"github.com/mycart/commerce-api/internal/core/ports"
)

// CurrentUserKey is the context key the authenticated aggregate is stored
// under.
const CurrentUserKey = "current_user"

// Auth validates the bearer JWT, resolves it to a user, and attaches the
// aggregate to the request context. Any failure answers 403 with the
// invalid-token envelope before a handler runs.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrInvalidToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrInvalidToken
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrInvalidToken
			}

			userID, _ := claims["user_id"].(string)
			if userID == "" {
				return domain.ErrInvalidToken
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set(CurrentUserKey, user)
			return next(c)
		}
	}
}
