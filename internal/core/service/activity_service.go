package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestionpagos/billing-system/internal/api/metrics"
	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

const defaultActivityLimit = 100

// ActivityService persists audit records handed over by the dispatcher
// workers and serves the recent-activity listing.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Process(ctx context.Context, input ports.ActivityInput) error {
	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	activity := &domain.Activity{
		Entity:    input.Entity,
		EntityID:  input.EntityID,
		Action:    input.Action,
		Actor:     input.Actor,
		CreatedAt: ts,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("insert_failed").Inc()
		s.logger.Error().Err(err).
			Str("entity", input.Entity).
			Int64("entity_id", input.EntityID).
			Msg("failed to persist activity")
		return err
	}

	metrics.ActivitiesProcessedTotal.WithLabelValues(input.Entity, input.Action).Inc()
	return nil
}

func (s *ActivityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
