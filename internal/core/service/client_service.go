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

const minClientNameLen = 3

// ClientService implements client use cases. List reads through the redis
// cache; every mutation invalidates it and enqueues an audit record.
type ClientService struct {
	repo     ports.ClientRepository
	cache    ports.ListCache
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, cache ports.ListCache, recorder ports.ActivityRecorder, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, cache: cache, recorder: recorder, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if utf8.RuneCountInString(input.Name) < minClientNameLen {
		return nil, domain.ErrClientNameTooShort
	}

	client, err := s.repo.Create(ctx, input.Name)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	metrics.ClientsCreatedTotal.Inc()
	s.invalidate(ctx, cacheKeyClients)
	s.record(client.ID, domain.ActionCreate, input.Actor)
	s.logger.Info().Int64("client_id", client.ID).Str("actor", input.Actor).Msg("client created")
	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	if payload, ok := s.cacheGet(ctx, cacheKeyClients); ok {
		var clients []domain.Client
		if err := json.Unmarshal(payload, &clients); err == nil {
			metrics.ListCacheTotal.WithLabelValues("clientes", "hit").Inc()
			return clients, nil
		}
	}
	metrics.ListCacheTotal.WithLabelValues("clientes", "miss").Inc()

	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyClients, clients)
	return clients, nil
}

func (s *ClientService) Rename(ctx context.Context, input ports.RenameClientInput) (*domain.Client, error) {
	if utf8.RuneCountInString(input.Name) < minClientNameLen {
		return nil, domain.ErrClientNameTooShort
	}

	client, err := s.repo.UpdateName(ctx, input.ID, input.Name)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cacheKeyClients)
	s.record(client.ID, domain.ActionUpdate, input.Actor)
	return client, nil
}

// Delete removes the client and its jobs. The cascade runs inside one
// repository transaction, so the jobs cache is stale either way.
func (s *ClientService) Delete(ctx context.Context, input ports.DeleteClientInput) error {
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return err
	}

	s.invalidate(ctx, cacheKeyClients, cacheKeyJobs)
	s.record(input.ID, domain.ActionDelete, input.Actor)
	s.logger.Info().Int64("client_id", input.ID).Str("actor", input.Actor).Msg("client deleted with jobs")
	return nil
}

func (s *ClientService) record(id int64, action, actor string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		Entity:    domain.EntityClient,
		EntityID:  id,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}

func (s *ClientService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
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

func (s *ClientService) cacheSet(ctx context.Context, key string, v any) {
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

func (s *ClientService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
