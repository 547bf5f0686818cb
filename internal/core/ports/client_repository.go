package ports

import (
	"context"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Client, error)
	// Delete removes the client and all of its jobs in one transaction.
	Delete(ctx context.Context, id int64) error
}
