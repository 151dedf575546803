package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rolodex-app/rolodex/internal/auth"
	"github.com/rolodex-app/rolodex/internal/config"
	"github.com/rolodex-app/rolodex/internal/contact"
	"github.com/rolodex-app/rolodex/internal/identity"
	"github.com/rolodex-app/rolodex/internal/middleware"
	"github.com/rolodex-app/rolodex/internal/token"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures the middleware chain and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Outside development the relational store is mandatory; Redis stays
	// optional since the rate limiter has a process-local fallback.
	if d.DB == nil && !d.Cfg.IsDevelopment() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(cors.New(corsConfig(d.Cfg)))
	app.Use(middleware.RequestID())

	var limiterStore middleware.RateLimitStore
	if d.Cache != nil {
		limiterStore = middleware.NewRedisRateLimitStore(d.Cache)
	} else {
		limiterStore = middleware.NewMemoryRateLimitStore()
	}
	app.Use(middleware.RateLimit(limiterStore, d.Cfg.RateLimitMax, d.Cfg.RateLimitWindow))
	app.Use(middleware.RequestLogger(d.Logger))

	RegisterHealthRoutes(app, d)

	var userRepo identity.Repository
	var contactRepo contact.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		contactRepo = contact.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		contactRepo = contact.NewMemoryRepository()
	}

	issuer := token.NewIssuer(d.Cfg.JWTSecret, d.Cfg.JWTTTL)
	authHandler := auth.NewHandler(identity.NewService(userRepo), issuer)
	contactHandler := contact.NewHandler(contact.NewService(contactRepo))
	requireAuth := middleware.RequiredAuth(issuer)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.GetRequestID(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAuthRoutes(api, authHandler, requireAuth)
	RegisterContactRoutes(api, contactHandler, requireAuth)

	return nil
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		ExposeHeaders: middleware.RequestIDHeader,
		MaxAge:        86400,
	}
	if cfg.IsDevelopment() || len(cfg.CORSOrigins) == 0 {
		c.AllowOrigins = "*"
		return c
	}
	c.AllowOrigins = strings.Join(cfg.CORSOrigins, ",")
	c.AllowCredentials = true
	return c
}
