package ports

import (
	"context"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// CreateClientInput carries the data needed to create a client. Actor is the
// authenticated user name, recorded in the audit trail.
type CreateClientInput struct {
	Name  string
	Actor string
}

// RenameClientInput carries the data for a client name update.
type RenameClientInput struct {
	ID    int64
	Name  string
	Actor string
}

// DeleteClientInput identifies the client to delete.
type DeleteClientInput struct {
	ID    int64
	Actor string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Rename(ctx context.Context, input RenameClientInput) (*domain.Client, error)
	Delete(ctx context.Context, input DeleteClientInput) error
}
