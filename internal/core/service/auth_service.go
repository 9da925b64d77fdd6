package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mycart/commerce-api/internal/core/domain"
	"github.com/mycart/commerce-api/internal/core/ports"
	"github.com/mycart/commerce-api/internal/infrastructure/metrics"
)

const minPasswordLength = 8

// emailPattern is the loose format check applied at registration: word
// characters optionally separated by + . -, an @, a similar domain, and a
// 2-3 character top-level segment.
var emailPattern = regexp.MustCompile(`^\w+([+.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Authenticate verifies email and password against the stored hash and, on
// success, issues an HS256 session token carrying the user id and email. A
// lookup-layer failure is reported as ErrAuthenticationUnavailable, kept
// distinct from bad credentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, domain.View, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.View{}, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("user lookup failed")
		return "", domain.View{}, domain.ErrAuthenticationUnavailable
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.View{}, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("token signing failed")
		return "", domain.View{}, domain.ErrAuthenticationUnavailable
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user.View(), nil
}

// Register validates the form, hashes the password, and persists the new
// user. A duplicate email is reported as ErrEmailAlreadyUsed; any other
// persistence failure as ErrCantCreateUser.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if fields := validateRegistration(input); len(fields) > 0 {
		return nil, domain.NewValidationFailed(fields...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrCantCreateUser
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyUsed) {
			return nil, domain.ErrEmailAlreadyUsed
		}
		s.logger.Error().Err(err).Msg("insert user failed")
		return nil, domain.ErrCantCreateUser
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// validateRegistration returns the names of the fields that failed.
func validateRegistration(input ports.RegisterInput) []string {
	var fields []string
	if !emailPattern.MatchString(input.Email) {
		fields = append(fields, "email")
	}
	if len(input.Password) < minPasswordLength {
		fields = append(fields, "password")
	}
	if input.Firstname == "" {
		fields = append(fields, "firstname")
	}
	if input.Lastname == "" {
		fields = append(fields, "lastname")
	}
	return fields
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
