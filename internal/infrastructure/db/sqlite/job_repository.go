package sqlite

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

// JobRepository persists jobs in the trabajos table.
type JobRepository struct {
	db *bun.DB
}

func NewJobRepository(db *bun.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create verifies the referenced client and inserts the job in a single
// transaction, so a concurrently deleted client cannot leave an orphan row.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*domain.Client)(nil)).
			Where("id = ?", job.ClientID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("check client: %w", err)
		}
		if !exists {
			return domain.ErrClientNotFound
		}

		if _, err := tx.NewInsert().Model(job).Exec(ctx); err != nil {
			return fmt.Errorf("insert job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.NewSelect().Model(&jobs).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) Filter(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	var jobs []domain.Job
	q := r.db.NewSelect().
		Model(&jobs).
		Where("id_clientes = ?", filter.ClientID).
		Order("id ASC")
	if filter.Finished != nil {
		q = q.Where("finalizado = ?", *filter.Finished)
	}
	if filter.Paid != nil {
		q = q.Where("pagado = ?", *filter.Paid)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("filter jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) UpdateDescription(ctx context.Context, id int64, description string) (*domain.Job, error) {
	return r.updateColumn(ctx, id, "descripcion", description)
}

func (r *JobRepository) SetFinished(ctx context.Context, id int64, finished bool) (*domain.Job, error) {
	return r.updateColumn(ctx, id, "finalizado", finished)
}

func (r *JobRepository) SetPaid(ctx context.Context, id int64, paid bool) (*domain.Job, error) {
	return r.updateColumn(ctx, id, "pagado", paid)
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*domain.Job)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// updateColumn sets a single column and echoes the updated row back, the
// way the legacy handlers did with update-then-select.
func (r *JobRepository) updateColumn(ctx context.Context, id int64, column string, value any) (*domain.Job, error) {
	job := new(domain.Job)
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*domain.Job)(nil)).
			Set(column+" = ?", value).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update job: %w", err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return domain.ErrJobNotFound
		}
		return tx.NewSelect().Model(job).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}
