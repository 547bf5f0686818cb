package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the user name injected by the Auth middleware. A
// protected handler running without it means the gate was bypassed or the
// token carried no identity; reject before touching the database.
func ctxActor(c echo.Context) (string, error) {
	actor, _ := c.Get("nombre").(string)
	if actor == "" {
		return "", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "faltan las credenciales de autenticacion")
	}
	return actor, nil
}
