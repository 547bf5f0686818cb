package service

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/gestionpagos/billing-system/internal/api/metrics"
	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

const minJobDescriptionLen = 3

// JobService implements job use cases.
type JobService struct {
	repo     ports.JobRepository
	cache    ports.ListCache
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewJobService(repo ports.JobRepository, cache ports.ListCache, recorder ports.ActivityRecorder, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, cache: cache, recorder: recorder, logger: logger}
}

// Create validates the job and inserts it. The repository checks the
// referenced client inside the insert transaction, so a concurrent client
// deletion cannot produce an orphan row.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if utf8.RuneCountInString(input.Description) < minJobDescriptionLen {
		return nil, domain.ErrJobDescriptionTooShort
	}
	if input.ClientID == 0 {
		return nil, domain.ErrJobClientRequired
	}

	job, err := s.repo.Create(ctx, &domain.Job{
		Description: input.Description,
		ClientID:    input.ClientID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", input.ClientID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.invalidate(ctx, cacheKeyJobs)
	s.record(job.ID, domain.ActionCreate, input.Actor)
	s.logger.Info().Int64("job_id", job.ID).Int64("client_id", job.ClientID).Str("actor", input.Actor).Msg("job created")
	return job, nil
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	if payload, ok := s.cacheGet(ctx, cacheKeyJobs); ok {
		var jobs []domain.Job
		if err := json.Unmarshal(payload, &jobs); err == nil {
			metrics.ListCacheTotal.WithLabelValues("trabajos", "hit").Inc()
			return jobs, nil
		}
	}
	metrics.ListCacheTotal.WithLabelValues("trabajos", "miss").Inc()

	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyJobs, jobs)
	return jobs, nil
}

// Filter is not cached: the key space of filter combinations is unbounded
// relative to their hit rate.
func (s *JobService) Filter(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	return s.repo.Filter(ctx, filter)
}

func (s *JobService) UpdateDescription(ctx context.Context, input ports.UpdateJobDescriptionInput) (*domain.Job, error) {
	if utf8.RuneCountInString(input.Description) < minJobDescriptionLen {
		return nil, domain.ErrJobDescriptionTooShort
	}

	job, err := s.repo.UpdateDescription(ctx, input.ID, input.Description)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cacheKeyJobs)
	s.record(job.ID, domain.ActionUpdate, input.Actor)
	return job, nil
}

func (s *JobService) SetFinished(ctx context.Context, input ports.SetJobFlagInput) (*domain.Job, error) {
	job, err := s.repo.SetFinished(ctx, input.ID, input.Value)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cacheKeyJobs)
	s.record(job.ID, domain.ActionUpdate, input.Actor)
	return job, nil
}

func (s *JobService) SetPaid(ctx context.Context, input ports.SetJobFlagInput) (*domain.Job, error) {
	job, err := s.repo.SetPaid(ctx, input.ID, input.Value)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cacheKeyJobs)
	s.record(job.ID, domain.ActionUpdate, input.Actor)
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, input ports.DeleteJobInput) error {
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return err
	}

	s.invalidate(ctx, cacheKeyJobs)
	s.record(input.ID, domain.ActionDelete, input.Actor)
	return nil
}

func (s *JobService) record(id int64, action, actor string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		Entity:    domain.EntityJob,
		EntityID:  id,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}

func (s *JobService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	return payload, ok
}

func (s *JobService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, listCacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *JobService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
