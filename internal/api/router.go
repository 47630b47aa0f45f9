package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api/handler"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api/middleware"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// Deps carries the constructed services and infrastructure handles the
// router wires together.
type Deps struct {
	AuthService    ports.AuthService
	DonorService   ports.DonorService
	RequestService ports.RequestService
	Readiness      *handler.ReadinessHandler
	JWTSecret      string
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("blooddonation"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	donorHandler := handler.NewDonorHandler(deps.DonorService)
	requestHandler := handler.NewRequestHandler(deps.RequestService, deps.Logger)
	authRequired := middleware.Auth(deps.JWTSecret)

	// --- API routes ---
	api := e.Group("/api")
	api.POST("/Register", authHandler.Register)
	api.POST("/Login", authHandler.Login)
	api.POST("/Donors/:userId", donorHandler.Register)
	api.GET("/DonorList/:bloodGroup/:location", donorHandler.List)
	api.POST("/Requester", requestHandler.Create)
	api.POST("/NotifyDonors", requestHandler.Notify)
	api.POST("/Donated", requestHandler.RecordDonation)
	api.GET("/Requests", requestHandler.List, authRequired)

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", deps.Readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
