package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Entities and actions recorded in the audit trail.
const (
	EntityClient = "cliente"
	EntityJob    = "trabajo"
	EntityUser   = "usuario"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Activity is one audit-trail row: who did what to which entity.
type Activity struct {
	bun.BaseModel `bun:"table:actividades,alias:act"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Entity    string    `bun:"entidad,notnull"`
	EntityID  int64     `bun:"entidad_id,notnull"`
	Action    string    `bun:"accion,notnull"`
	Actor     string    `bun:"actor,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
