package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/account"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/auth"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/badges"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/config"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/economy"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/middleware"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/notification"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/prestige"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/profile"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/progression"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/rewards"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/tiers"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.Env)
		}
	}
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log in desired format: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories: Postgres in deployed environments, in-memory for dev.
	var accountRepo account.Repository
	var profileRepo profile.Repository
	var txStore economy.Store
	if d.DB != nil {
		accountRepo = account.NewPostgresRepository(d.DB)
		profileRepo = profile.NewPostgresRepository(d.DB)
		txStore = economy.NewPostgresStore(d.DB)
	} else {
		accountRepo = account.NewMemoryRepository()
		profileRepo = profile.NewMemoryRepository()
		txStore = economy.NewMemoryStore()
	}

	// Engine components
	registry := tiers.NewDefaultRegistry()
	calculator := rewards.NewCalculator(registry)
	prestigeEngine := prestige.NewDefaultEngine()
	catalog := badges.NewDefaultCatalog()
	notifier := notification.NewLoggerNotifier(d.Logger)

	// Services and handlers
	accountSvc := account.NewService(accountRepo)
	authSvc := auth.NewService(d.Cfg, accountRepo)
	authHandler := auth.NewHandler(accountSvc, authSvc)
	progressionSvc := progression.NewService(profileRepo, txStore, registry, calculator, prestigeEngine, notifier)
	progressionHandler := progression.NewHandler(progressionSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterAccountRoutes(api, accountSvc, progressionSvc, d.Logger)
	RegisterTierRoutes(api, registry, calculator)
	RegisterBadgeRoutes(api, catalog)
	api.Get("/currencies", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"currencies": economy.Currencies()})
	})
	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	// Protected routes
	jwtmw := middleware.JWTAuth(d.Cfg, accountRepo)
	protected := api.Group("", jwtmw)
	protected.Use(middleware.Audit(d.Logger))
	protected.Post("/auth/logout", authHandler.Logout)
	// Profile endpoint
	protected.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return c.SendStatus(http.StatusUnauthorized)
		}
		user, err := accountRepo.FindByID(c.UserContext(), uid)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "user not found")
		}
		return c.JSON(fiber.Map{
			"user_id":       user.ID,
			"handle":        user.Handle,
			"role":          user.Role,
			"device_id":     user.DeviceID,
			"token_version": user.TokenVersion,
			"created_at":    user.CreatedAt,
			"last_login":    user.LastLogin,
		})
	})
	RegisterProgressionRoutes(protected, progressionHandler)
	RegisterWalletRoutes(protected, progressionHandler)

	return nil
}
