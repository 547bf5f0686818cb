package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// ClientRepository persists clients in the clientes table.
type ClientRepository struct {
	db *bun.DB
}

func NewClientRepository(db *bun.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, name string) (*domain.Client, error) {
	client := &domain.Client{Name: name}
	if _, err := r.db.NewInsert().Model(client).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := r.db.NewSelect().Model(&clients).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	client := new(domain.Client)
	err := r.db.NewSelect().Model(client).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.Client, error) {
	client := new(domain.Client)
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*domain.Client)(nil)).
			Set("nombre = ?", name).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update client: %w", err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return domain.ErrClientNotFound
		}
		return tx.NewSelect().Model(client).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client's jobs and then the client. Both statements
// share one transaction: either the whole cascade lands or none of it.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*domain.Client)(nil)).
			Where("id = ?", id).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("check client: %w", err)
		}
		if !exists {
			return domain.ErrClientNotFound
		}

		if _, err := tx.NewDelete().
			Model((*domain.Job)(nil)).
			Where("id_clientes = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete client jobs: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*domain.Client)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete client: %w", err)
		}
		return nil
	})
}
