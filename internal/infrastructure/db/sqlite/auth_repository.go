package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// AuthRepository persists users in the usuarios table.
type AuthRepository struct {
	db *bun.DB
}

func NewAuthRepository(db *bun.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// Create inserts the user after verifying the name is free. Check and
// insert share one transaction so two concurrent registrations of the same
// name cannot both succeed.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*domain.User)(nil)).
			Where("lower(nombre) = ?", user.Name).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if exists {
			return domain.ErrUserExists
		}

		if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *AuthRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	user := new(domain.User)
	err := r.db.NewSelect().
		Model(user).
		Where("lower(nombre) = ?", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
