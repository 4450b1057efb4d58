package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/thrive/wellness-api/docs"
	"github.com/thrive/wellness-api/internal/api/handler"
	"github.com/thrive/wellness-api/internal/api/middleware"
	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/pkg/logger"
)

// Deps is everything the router needs to build its handlers.
type Deps struct {
	Sessions     ports.SessionStore
	Tokens       ports.TokenIssuer
	API          ports.CatalogAPI
	Catalog      ports.CatalogRepository
	Home         handler.HomeLoader
	Readiness    []handler.Dependency
	JWTSecret    string
	PollInterval time.Duration
	// Streams bounds every open event stream. Cancel it before shutting the
	// server down; nil leaves streams to end with their clients.
	Streams context.Context
	Logger  zerolog.Logger
	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "thrive",
		Registerer: registerer,
	}))

	// --- Handlers ---
	screens := handler.NewScreenHandler()
	auth := handler.NewAuthHandler(d.Sessions, d.Tokens)
	profile := handler.NewProfileHandler(d.Sessions)
	home := handler.NewHomeHandler(d.Home)
	therapists := handler.NewTherapistHandler(d.API, d.Home)
	journal := handler.NewJournalHandler(d.API)
	chat := handler.NewChatHandler(d.Streams, d.API, d.Catalog, d.PollInterval, d.Logger)
	blog := handler.NewBlogHandler(d.API)
	fitness := handler.NewFitnessHandler(d.Streams, d.API)
	story := handler.NewStoryHandler(d.API, d.Catalog)

	// --- Public screens ---
	e.GET("/", screens.Landing)
	e.GET("/login", screens.Login)
	e.GET("/signup", screens.Signup)

	// --- Auth routes ---
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/signup", auth.Signup)
	e.POST("/auth/logout", auth.Logout)
	e.GET("/auth/session", auth.Session)

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Readiness...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected screens ---
	v1 := e.Group("/v1", middleware.RequireSession(d.Sessions, d.JWTSecret))

	v1.GET("/home", home.Patient)
	v1.GET("/therapist-home", home.Therapist, middleware.RequireRole(domain.RoleTherapist))

	v1.GET("/profile", profile.Get)
	v1.PATCH("/profile", profile.Update)

	v1.GET("/therapists", therapists.List)
	v1.GET("/therapists/recommended", therapists.Recommended)
	v1.GET("/therapists/:id", therapists.Get)

	v1.GET("/journal", journal.List)
	v1.POST("/journal", journal.Create)
	v1.GET("/journal/:id", journal.Get)

	v1.GET("/chat/:id", chat.Get)
	v1.POST("/chat/:id", chat.Send)
	v1.GET("/chat/:id/stream", chat.Stream)
	v1.GET("/video-call/:id", chat.Call)
	v1.GET("/video-call/:id/stream", chat.CallStream)

	v1.GET("/blog", blog.List)
	v1.GET("/blog/:id", blog.Get)

	v1.GET("/fitness", fitness.List)
	v1.GET("/fitness/category/:category", fitness.Category)
	v1.GET("/fitness/content/:id", fitness.Get)
	v1.GET("/fitness/individual/:id", fitness.Get)
	v1.GET("/fitness/content/:id/workout", fitness.Workout)

	v1.GET("/story", story.Stories)
	v1.GET("/create-meme", story.CreateMeme)

	// --- Catch-all ---
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	})

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	log = logger.Component(log, "http")
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
