package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gestionpagos/billing-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// pathID parses a numeric path parameter the legacy routes carried as :id.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "id invalido")
	}
	return id, nil
}

// Create handles POST /clientes.
//
// @Summary      Create a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      413   {object}  errorResponse
// @Router       /clientes [post]
func (h *ClientHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "cuerpo de la peticion invalido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Name:  req.Nombre,
		Actor: actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// List handles GET /clientes.
//
// @Summary      List all clients
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clientResponse
// @Failure      413  {object}  errorResponse
// @Router       /clientes [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponses(clients))
}

// Update handles PUT /clientes/:id.
//
// @Summary      Rename a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Client id"
// @Param        body  body      clientRequest  true  "New name"
// @Success      200   {object}  clientResponse
// @Failure      413   {object}  errorResponse
// @Router       /clientes/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "cuerpo de la peticion invalido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	}

	client, err := h.service.Rename(c.Request().Context(), ports.RenameClientInput{
		ID:    id,
		Name:  req.Nombre,
		Actor: actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /clientes/:id. Deleting a client also deletes all
// of its jobs.
//
// @Summary      Delete a client and its jobs
// @Tags         clientes
// @Security     BearerAuth
// @Param        id  path  int  true  "Client id"
// @Success      204
// @Failure      413  {object}  errorResponse
// @Router       /clientes/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeleteClientInput{ID: id, Actor: actor}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
