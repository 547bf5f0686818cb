package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

const (
	minUsernameLen = 4 // legacy rule: more than 3 characters
	minPasswordLen = 8
)

// AuthService implements registration and login with stateless JWT tokens.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new user with a bcrypt-hashed password. The name is
// lowercase-normalized so uniqueness is case-insensitive.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	name := normalizeName(username)
	if utf8.RuneCountInString(name) < minUsernameLen {
		return nil, domain.ErrUsernameTooShort
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and issues a signed token. An unknown user and
// a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByName(ctx, normalizeName(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(user)
}

// generateToken signs an HS256 token with the legacy claim names.
// exp is Unix seconds per RFC 7519; the window is a real 24h by default.
func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"nombre":  user.Name,
		"user_id": user.ID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
