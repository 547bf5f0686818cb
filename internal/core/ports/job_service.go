package ports

import (
	"context"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// CreateJobInput carries the data needed to create a job.
type CreateJobInput struct {
	Description string
	ClientID    int64
	Actor       string
}

// UpdateJobDescriptionInput carries a job description update.
type UpdateJobDescriptionInput struct {
	ID          int64
	Description string
	Actor       string
}

// SetJobFlagInput carries a finished/paid flag update.
type SetJobFlagInput struct {
	ID    int64
	Value bool
	Actor string
}

// DeleteJobInput identifies the job to delete.
type DeleteJobInput struct {
	ID    int64
	Actor string
}

// JobService defines use-case operations for jobs.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Filter(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	UpdateDescription(ctx context.Context, input UpdateJobDescriptionInput) (*domain.Job, error)
	SetFinished(ctx context.Context, input SetJobFlagInput) (*domain.Job, error)
	SetPaid(ctx context.Context, input SetJobFlagInput) (*domain.Job, error)
	Delete(ctx context.Context, input DeleteJobInput) error
}
