package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/gestionpagos/billing-system/internal/api/metrics"
)

// PublicRoute exempts a (path, methods) pair from token checks. An empty
// Methods slice exempts every method on the path. Paths are matched against
// the registered route pattern, so "/swagger/*" covers the whole subtree.
type PublicRoute struct {
	Path    string
	Methods []string
}

func (r PublicRoute) matches(method, path string) bool {
	if r.Path != path {
		return false
	}
	return len(r.Methods) == 0 || slices.Contains(r.Methods, method)
}

// Auth is the gate in front of every route. Requests matching the public
// table pass through untouched; everything else must carry a valid bearer
// token, whose claims are injected into the request context.
//
// Existing clients expect 413 for every rejected request, auth included.
func Auth(jwtSecret string, public []PublicRoute) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method, path := c.Request().Method, c.Path()
			for _, route := range public {
				if route.matches(method, path) {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "falta el token de autorizacion")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "encabezado de autorizacion invalido")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "token invalido o expirado")
			}

			c.Set("nombre", claims["nombre"])
			c.Set("user_id", claims["user_id"])

			return next(c)
		}
	}
}
