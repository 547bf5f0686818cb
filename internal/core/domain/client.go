package domain

import (
	"errors"

	"github.com/uptrace/bun"
)

var ErrClientNotFound = errors.New("no se encontro el cliente asociado")
var ErrClientNameTooShort = errors.New("el nombre debe tener mas de 3 caracteres")

// Client is a billable customer ("cliente" in the legacy schema).
type Client struct {
	bun.BaseModel `bun:"table:clientes,alias:cli"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"nombre,notnull"`
}
