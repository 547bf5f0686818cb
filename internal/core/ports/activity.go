package ports

import (
	"context"
	"time"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// ActivityInput is the DTO enqueued by services after a successful mutation.
type ActivityInput struct {
	Entity    string
	EntityID  int64
	Action    string
	Actor     string
	Timestamp time.Time
}

// ActivityRecorder is the interface services use to enqueue audit records.
// Recording is asynchronous; a full queue must never block a request.
type ActivityRecorder interface {
	Enqueue(input ActivityInput)
}

// ActivityService processes queued audit records and serves the listing.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ActivityRepository persists audit rows.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}
