package domain

import (
	"errors"

	"github.com/uptrace/bun"
)

var ErrUserExists = errors.New("el usuario ya existe")
var ErrUserNotFound = errors.New("no se encontro el usuario")
var ErrInvalidCredentials = errors.New("usuario o clave incorrectos")
var ErrUsernameTooShort = errors.New("el usuario debe tener mas de 3 caracteres")
var ErrPasswordTooShort = errors.New("la clave debe tener al menos 8 caracteres")

// User models an authenticated actor. Names are lowercase-normalized before
// every read and write; uniqueness is case-insensitive.
type User struct {
	bun.BaseModel `bun:"table:usuarios,alias:usr"`

	ID           int64  `bun:"id,pk,autoincrement" json:"id"`
	Name         string `bun:"nombre,notnull,unique" json:"nombre"`
	PasswordHash string `bun:"clave,notnull" json:"-"`
}
