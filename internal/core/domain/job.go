package domain

import (
	"errors"

	"github.com/uptrace/bun"
)

var ErrJobNotFound = errors.New("no se encontro el trabajo")
var ErrJobDescriptionTooShort = errors.New("la descripcion debe tener mas de 3 caracteres")
var ErrJobClientRequired = errors.New("no se envio el ID del cliente asociado")

// Job is a unit of billable work tied to exactly one client ("trabajo" in
// the legacy schema). Finished and Paid are proper booleans internally; the
// wire contract renders them as 0/1 and accepts only the literal strings
// "0" and "1" on updates.
type Job struct {
	bun.BaseModel `bun:"table:trabajos,alias:trb"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Description string `bun:"descripcion,notnull"`
	ClientID    int64  `bun:"id_clientes,notnull"`
	Finished    bool   `bun:"finalizado,notnull,default:false"`
	Paid        bool   `bun:"pagado,notnull,default:false"`
}
