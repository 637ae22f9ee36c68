// Package api wires the HTTP surface: routes, guards, validation and the
// central error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mockleague/league-api/docs"
	"github.com/mockleague/league-api/internal/api/handler"
	"github.com/mockleague/league-api/internal/api/middleware"
	"github.com/mockleague/league-api/internal/api/session"
	"github.com/mockleague/league-api/internal/core/service"
	mongodb "github.com/mockleague/league-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mockleague/league-api/internal/infrastructure/db/redis"
	"github.com/mockleague/league-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The API is mounted twice, at /api/v1 and at the legacy /v1 prefix.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("league"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	fixtureRepo := mongodb.NewFixtureRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.TokenSecret, cfg.TokenLifespan, cfg.Env)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	teamService := service.NewTeamService(teamRepo, fixtureRepo, log)
	fixtureService := service.NewFixtureService(fixtureRepo, teamRepo, cfg.BaseURL, log)

	sessions := session.NewManager(sessionStore, cfg.SessionTimeout, cfg.IsProduction())

	authHandler := handler.NewAuthHandler(authService, sessions)
	teamHandler := handler.NewTeamHandler(teamService)
	fixtureHandler := handler.NewFixtureHandler(fixtureService)

	// --- Guards ---
	sessionGuard := middleware.RequireActiveSession(sessions)
	tokenGuard := middleware.RequireValidToken(tokens, userRepo)
	adminGuard := middleware.RequireAdmin()

	registerRoutes(e.Group("/api/v1"), authHandler, teamHandler, fixtureHandler, sessionGuard, tokenGuard, adminGuard)
	registerRoutes(e.Group("/v1"), authHandler, teamHandler, fixtureHandler, sessionGuard, tokenGuard, adminGuard)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func registerRoutes(
	g *echo.Group,
	authHandler *handler.AuthHandler,
	teamHandler *handler.TeamHandler,
	fixtureHandler *handler.FixtureHandler,
	sessionGuard, tokenGuard, adminGuard echo.MiddlewareFunc,
) {
	g.POST("/auth/signup", authHandler.Signup)
	g.POST("/auth/login", authHandler.Login)
	g.PUT("/auth/logout", authHandler.Logout, sessionGuard)
	g.PUT("/auth/toggle/role", authHandler.ToggleRole, sessionGuard, tokenGuard, adminGuard)

	teams := g.Group("/teams", sessionGuard, tokenGuard)
	teams.GET("", teamHandler.List)
	teams.POST("", teamHandler.Create, adminGuard)
	teams.PUT("/:id", teamHandler.Update, adminGuard)
	teams.DELETE("/:id", teamHandler.Delete, adminGuard)

	fixtures := g.Group("/fixtures", sessionGuard, tokenGuard)
	fixtures.GET("", fixtureHandler.List)
	fixtures.POST("", fixtureHandler.Create, adminGuard)
	fixtures.PUT("/:id", fixtureHandler.Update, adminGuard)
	fixtures.DELETE("/:id", fixtureHandler.Delete, adminGuard)
	fixtures.POST("/:id/link/generate", fixtureHandler.GenerateLink, adminGuard)
}
