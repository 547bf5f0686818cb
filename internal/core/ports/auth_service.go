package ports

import (
	"context"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, username, password string) (string, error)
}
