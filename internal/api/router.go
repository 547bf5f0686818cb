package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/uptrace/bun"

	"github.com/gestionpagos/billing-system/internal/api/handler"
	"github.com/gestionpagos/billing-system/internal/api/middleware"
	"github.com/gestionpagos/billing-system/internal/core/ports"
	"github.com/gestionpagos/billing-system/internal/core/service"
	redisdb "github.com/gestionpagos/billing-system/internal/infrastructure/db/redis"
	"github.com/gestionpagos/billing-system/internal/infrastructure/db/sqlite"
	"github.com/gestionpagos/billing-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is injected so request handling never blocks on
// audit writes.
func NewRouter(db *bun.DB, rdb *redis.Client, recorder ports.ActivityRecorder, activities ports.ActivityService, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("billing"))

	// --- Dependencies ---
	cache := redisdb.NewListCache(rdb)

	authRepo := sqlite.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	clientRepo := sqlite.NewClientRepository(db)
	clientService := service.NewClientService(clientRepo, cache, recorder, log)
	clientHandler := handler.NewClientHandler(clientService)

	jobRepo := sqlite.NewJobRepository(db)
	jobService := service.NewJobService(jobRepo, cache, recorder, log)
	jobHandler := handler.NewJobHandler(jobService)

	activityHandler := handler.NewActivityHandler(activities)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	// --- Authorization gate ---
	public := []middleware.PublicRoute{
		{Path: "/registro", Methods: []string{http.MethodPost}},
		{Path: "/login", Methods: []string{http.MethodPost}},
		{Path: "/health", Methods: []string{http.MethodGet}},
		{Path: "/health/ready", Methods: []string{http.MethodGet}},
		{Path: "/metrics", Methods: []string{http.MethodGet}},
		{Path: "/swagger/*", Methods: []string{http.MethodGet}},
	}
	e.Use(middleware.Auth(jwtSecret, public))

	// --- Auth routes ---
	e.POST("/registro", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Client routes ---
	e.POST("/clientes", clientHandler.Create)
	e.GET("/clientes", clientHandler.List)
	e.PUT("/clientes/:id", clientHandler.Update)
	e.DELETE("/clientes/:id", clientHandler.Delete)

	// --- Job routes ---
	e.POST("/trabajos", jobHandler.Create)
	e.GET("/trabajos", jobHandler.List)
	e.GET("/trabajos/:id", jobHandler.Filter)
	e.GET("/trabajos/:id/:finalizado", jobHandler.Filter)
	e.GET("/trabajos/:id/:finalizado/:pagado", jobHandler.Filter)
	e.PUT("/trabajos/:id/descripcion", jobHandler.UpdateDescription)
	e.PUT("/trabajos/:id/finalizado", jobHandler.SetFinished)
	e.PUT("/trabajos/:id/pagado", jobHandler.SetPaid)
	e.DELETE("/trabajos/:id", jobHandler.Delete)

	// --- Audit trail ---
	e.GET("/actividades", activityHandler.List)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
