package sqlite

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// ActivityRepository persists audit rows in the actividades table.
type ActivityRepository struct {
	db *bun.DB
}

func NewActivityRepository(db *bun.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	if _, err := r.db.NewInsert().Model(activity).Exec(ctx); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.NewSelect().
		Model(&activities).
		Order("created_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
