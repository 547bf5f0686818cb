package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gestionpagos/billing-system/internal/core/domain"
)

// errorResponse is the legacy error envelope. The capital-E key and the
// blanket 413 status are the documented contract of the API being replaced;
// existing consumers parse both.
type errorResponse struct {
	Error string `json:"Error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders every known domain error as 413 with its message.
//   - Passes echo's own errors (404 from the router, auth gate rejections)
//     through with their code.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

var knownErrors = []error{
	domain.ErrUserExists,
	domain.ErrUserNotFound,
	domain.ErrInvalidCredentials,
	domain.ErrUsernameTooShort,
	domain.ErrPasswordTooShort,
	domain.ErrClientNotFound,
	domain.ErrClientNameTooShort,
	domain.ErrJobNotFound,
	domain.ErrJobDescriptionTooShort,
	domain.ErrJobClientRequired,
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: router 404/405 and everything raised as an
	// echo.HTTPError (bind failures, validation, auth gate).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors all collapse to 413 per the legacy contract.
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return http.StatusRequestEntityTooLarge, known.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusRequestEntityTooLarge, "error interno"
}
