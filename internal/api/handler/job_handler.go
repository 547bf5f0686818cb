package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestionpagos/billing-system/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /trabajos.
//
// @Summary      Create a job for an existing client
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      413   {object}  errorResponse
// @Router       /trabajos [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "cuerpo de la peticion invalido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Description: req.Descripcion,
		ClientID:    req.IDClientes,
		Actor:       actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// List handles GET /trabajos.
//
// @Summary      List all jobs
// @Tags         trabajos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   jobResponse
// @Failure      413  {object}  errorResponse
// @Router       /trabajos [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// Filter handles the legacy optional-parameter route
// GET /trabajos/:id[/:finalizado[/:pagado]], filtering by client and the
// finished/paid flags.
//
// @Summary      List jobs filtered by client and flags
// @Tags         trabajos
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      int     true   "Client id"
// @Param        finalizado  path      string  false  "Finished flag (0 or 1)"
// @Param        pagado      path      string  false  "Paid flag (0 or 1)"
// @Success      200  {array}   jobResponse
// @Failure      413  {object}  errorResponse
// @Router       /trabajos/{id}/{finalizado}/{pagado} [get]
func (h *JobHandler) Filter(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	filter := ports.JobFilter{ClientID: clientID}
	if raw := c.Param("finalizado"); raw != "" {
		v, ok := bitFlag(raw)
		if !ok {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "el estado de finalizacion debe ser 0 o 1")
		}
		filter.Finished = &v
	}
	if raw := c.Param("pagado"); raw != "" {
		v, ok := bitFlag(raw)
		if !ok {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "el estado de pago debe ser 0 o 1")
		}
		filter.Paid = &v
	}

	jobs, err := h.service.Filter(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// UpdateDescription handles PUT /trabajos/:id/descripcion.
//
// @Summary      Update a job's description
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                          true  "Job id"
// @Param        body  body      updateJobDescriptionRequest  true  "New description"
// @Success      200   {object}  jobResponse
// @Failure      413   {object}  errorResponse
// @Router       /trabajos/{id}/descripcion [put]
func (h *JobHandler) UpdateDescription(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "cuerpo de la peticion invalido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	}

	job, err := h.service.UpdateDescription(c.Request().Context(), ports.UpdateJobDescriptionInput{
		ID:          id,
		Description: req.Descripcion,
		Actor:       actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// SetFinished handles PUT /trabajos/:id/finalizado. The payload value must
// be the literal string "0" or "1".
//
// @Summary      Update a job's finished flag
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Job id"
// @Param        body  body      setFinishedRequest  true  "Finished flag"
// @Success      200   {object}  jobResponse
// @Failure      413   {object}  errorResponse
// @Router       /trabajos/{id}/finalizado [put]
func (h *JobHandler) SetFinished(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setFinishedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "el estado de finalizacion debe ser 0 o 1")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "el estado de finalizacion debe ser 0 o 1")
	}

	value, _ := bitFlag(req.Finalizado)
	job, err := h.service.SetFinished(c.Request().Context(), ports.SetJobFlagInput{
		ID:    id,
		Value: value,
		Actor: actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// SetPaid handles PUT /trabajos/:id/pagado. The payload value must be the
// literal string "0" or "1".
//
// @Summary      Update a job's paid flag
// @Tags         trabajos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Job id"
// @Param        body  body      setPaidRequest  true  "Paid flag"
// @Success      200   {object}  jobResponse
// @Failure      413   {object}  errorResponse
// @Router       /trabajos/{id}/pagado [put]
func (h *JobHandler) SetPaid(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setPaidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "el estado de pago debe ser 0 o 1")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "el estado de pago debe ser 0 o 1")
	}

	value, _ := bitFlag(req.Pagado)
	job, err := h.service.SetPaid(c.Request().Context(), ports.SetJobFlagInput{
		ID:    id,
		Value: value,
		Actor: actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete handles DELETE /trabajos/:id.
//
// @Summary      Delete a job
// @Tags         trabajos
// @Security     BearerAuth
// @Param        id  path  int  true  "Job id"
// @Success      204
// @Failure      413  {object}  errorResponse
// @Router       /trabajos/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeleteJobInput{ID: id, Actor: actor}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
