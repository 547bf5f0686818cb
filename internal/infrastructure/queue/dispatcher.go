package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gestionpagos/billing-system/internal/api/metrics"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ActivityProcessor is the interface workers hand records to.
type ActivityProcessor interface {
	Process(ctx context.Context, input ports.ActivityInput) error
}

// Dispatcher routes audit records to a fixed set of workers using consistent
// hashing on the entity key, guaranteeing per-entity ordering. Enqueueing is
// asynchronous so request latency never depends on the audit write.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ActivityProcessor
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ActivityProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its entity. When the
// worker channel is full the record is dropped and counted; the audit trail
// is best-effort by design.
func (d *Dispatcher) Enqueue(input ports.ActivityInput) {
	idx := d.shardIndex(input)
	select {
	case d.workers[idx] <- input:
		metrics.ActivitiesQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivitiesErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("entity", input.Entity).
			Int64("entity_id", input.EntityID).
			Msg("activity dropped, worker queue full")
	}
}

// shardIndex maps an entity deterministically to a worker index.
func (d *Dispatcher) shardIndex(input ports.ActivityInput) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s:%d", input.Entity, input.EntityID)
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("entity", input.Entity).
					Int64("entity_id", input.EntityID).
					Int("worker_id", id).
					Msg("activity processing failed")
			}
			metrics.ActivitiesQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
