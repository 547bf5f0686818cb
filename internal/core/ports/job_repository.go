package ports

import (
	"context"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// JobFilter carries the optional filters of the legacy
// /trabajos/:id_clientes/:finalizado/:pagado route. Nil means "no filter".
type JobFilter struct {
	ClientID int64
	Finished *bool
	Paid     *bool
}

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	// Create verifies the referenced client exists and inserts the job,
	// both inside a single transaction.
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Filter(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*domain.Job, error)
	SetFinished(ctx context.Context, id int64, finished bool) (*domain.Job, error)
	SetPaid(ctx context.Context, id int64, paid bool) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}
