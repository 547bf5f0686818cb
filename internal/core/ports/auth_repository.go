package ports

import (
	"context"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByName looks a user up by lowercase-normalized name.
	FindByName(ctx context.Context, name string) (*domain.User, error)
	// Create inserts a new user. The uniqueness check (case-insensitive)
	// and the insert run inside a single transaction.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
