package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

// ActivityHandler serves the audit trail listing.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityResponse struct {
	ID        int64     `json:"id"`
	Entidad   string    `json:"entidad"`
	EntidadID int64     `json:"entidad_id"`
	Accion    string    `json:"accion"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

func toActivityResponses(activities []domain.Activity) []activityResponse {
	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, activityResponse{
			ID:        a.ID,
			Entidad:   a.Entity,
			EntidadID: a.EntityID,
			Accion:    a.Action,
			Actor:     a.Actor,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

// List handles GET /actividades, returning the most recent audit records,
// newest first. The optional ?limite= query caps the page size.
//
// @Summary      List recent activity
// @Tags         actividades
// @Produce      json
// @Security     BearerAuth
// @Param        limite  query     int  false  "Maximum rows (default 100)"
// @Success      200     {array}   activityResponse
// @Failure      413     {object}  errorResponse
// @Router       /actividades [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "limite invalido")
		}
		limit = n
	}

	activities, err := h.service.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityResponses(activities))
}
