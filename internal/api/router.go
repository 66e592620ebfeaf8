package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/mywallet/wallet-system/docs"
	"github.com/mywallet/wallet-system/internal/api/handler"
	"github.com/mywallet/wallet-system/internal/api/middleware"
	"github.com/mywallet/wallet-system/internal/core/service"
	"github.com/mywallet/wallet-system/internal/infrastructure/config"
	"github.com/mywallet/wallet-system/internal/infrastructure/db/postgres"
	redisdb "github.com/mywallet/wallet-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("mywallet"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.BcryptCost)
	recordService := service.NewRecordService(recordRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	recordHandler := handler.NewRecordHandler(recordService)

	bearer := middleware.BearerToken()
	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.RateLimit.SignInLimit, cfg.RateLimit.SignInWindow)

	// --- Auth routes ---
	e.POST("/sign-up", authHandler.SignUp)
	e.POST("/sign-in", authHandler.SignIn, middleware.RateLimit(loginLimiter))
	e.POST("/logout", authHandler.Logout, bearer)

	// --- Record routes ---
	e.GET("/records", recordHandler.List, bearer)
	e.POST("/records", recordHandler.Create, bearer)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// Smoke endpoint kept for external monitors.
	e.GET("/teste", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
