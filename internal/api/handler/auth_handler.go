package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestionpagos/billing-system/internal/api/metrics"
	"github.com/gestionpagos/billing-system/internal/core/domain"
	"github.com/gestionpagos/billing-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Clave   string `json:"clave"   validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// messageResponse is the login error envelope. Unlike every other route,
// the legacy login failure used a lowercase "message" key.
type messageResponse struct {
	Message string `json:"message"`
}

// Register handles POST /registro.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "User credentials"
// @Success      200   {object}  registerResponse
// @Failure      413   {object}  errorResponse
// @Router       /registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "cuerpo de la peticion invalido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Usuario, req.Clave); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{Message: "usuario creado"})
}

// Login handles POST /login.
//
// @Summary      Login and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "User credentials"
// @Success      200   {object}  tokenResponse
// @Failure      413   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusRequestEntityTooLarge, messageResponse{Message: "cuerpo de la peticion invalido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusRequestEntityTooLarge, messageResponse{Message: err.Error()})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Usuario, req.Clave)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
			return c.JSON(http.StatusRequestEntityTooLarge, messageResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusRequestEntityTooLarge, messageResponse{Message: "error interno"})
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
