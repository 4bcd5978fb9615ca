package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/salesflowhq/salesflow/config"
	apierrors "github.com/salesflowhq/salesflow/pkg/api/errors"
	"github.com/salesflowhq/salesflow/pkg/api/handlers"
	"github.com/salesflowhq/salesflow/pkg/auth"
	"github.com/salesflowhq/salesflow/pkg/cache"
	"github.com/salesflowhq/salesflow/pkg/campaign"
	"github.com/salesflowhq/salesflow/pkg/database"
	"github.com/salesflowhq/salesflow/pkg/draft"
	"github.com/salesflowhq/salesflow/pkg/email"
	"github.com/salesflowhq/salesflow/pkg/export"
	"github.com/salesflowhq/salesflow/pkg/jobs"
	"github.com/salesflowhq/salesflow/pkg/leadlifecycle"
	"github.com/salesflowhq/salesflow/pkg/leads"
	"github.com/salesflowhq/salesflow/pkg/locks"
	"github.com/salesflowhq/salesflow/pkg/metrics"
	custommiddleware "github.com/salesflowhq/salesflow/pkg/middleware"
	"github.com/salesflowhq/salesflow/pkg/scheduler"
	"github.com/salesflowhq/salesflow/pkg/scoring"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // 5 req/min for login

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORS())
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.Middleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "SalesFlow API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// JWT blacklist for logout
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Email sending: SendGrid when configured, console logging otherwise
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey)

	// Email drafting: OpenAI when configured, deterministic templates otherwise
	var drafter draft.Drafter
	if cfg.OpenAIAPIKey != "" {
		drafter = draft.NewOpenAIDrafter(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Printf("✅ OpenAI drafter initialized (model: %s)", cfg.OpenAIModel)
	} else {
		drafter = draft.NewTemplateDrafter()
		log.Printf("ℹ️  OpenAI disabled, using template drafter")
	}

	// Initialize services
	keyedLocks := locks.New()
	leadService := leads.NewService(db.Ent, keyedLocks)
	lifecycleService := leadlifecycle.NewService(db.Ent, keyedLocks)
	campaignService := campaign.NewService(db.Ent, keyedLocks)
	schedulerService := scheduler.NewService(db.Ent)
	draftService := draft.NewService(db.Ent, drafter)
	scoringService := scoring.NewService(db.Ent)
	exportService := export.NewService(leadService)

	// Background jobs
	dispatcher := jobs.NewDispatcher(db.Ent, redisClient, emailService, prometheusMetrics)
	cronManager := jobs.NewCronManager(db.Ent, dispatcher, schedulerService, draftService, scoringService, log.Default())
	if cfg.EnableCronJobs {
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Cron jobs started")
	} else {
		log.Printf("ℹ️  Cron jobs disabled (ENABLE_CRON_JOBS=false)")
	}

	// Initialize handlers
	apierrors.OnTenantMismatch = prometheusMetrics.RecordTenantMismatch
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, prometheusMetrics)
	leadHandler := handlers.NewLeadHandler(leadService, exportService, prometheusMetrics)
	lifecycleHandler := handlers.NewLeadLifecycleHandler(lifecycleService, prometheusMetrics)
	campaignHandler := handlers.NewCampaignHandler(campaignService, schedulerService, draftService, prometheusMetrics)

	v1 := e.Group("/api/v1")

	// Authentication routes (public, tighter rate limit)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, authRateLimiter.Middleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.Middleware())
		authRoutes.POST("/logout", authHandler.Logout, custommiddleware.JWTAuth(cfg.JWTSecret, tokenBlacklist))
	}

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTAuth(cfg.JWTSecret, tokenBlacklist))
	{
		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.POST("", leadHandler.Create)
			leadsGroup.GET("", leadHandler.List)
			leadsGroup.GET("/export", leadHandler.Export)
			leadsGroup.GET("/status-counts", lifecycleHandler.StatusCounts)
			leadsGroup.GET("/:id", leadHandler.Get)
			leadsGroup.PATCH("/:id", leadHandler.Update)
			leadsGroup.DELETE("/:id", leadHandler.Delete)
			leadsGroup.PATCH("/:id/status", lifecycleHandler.UpdateStatus)
			leadsGroup.GET("/:id/status-history", lifecycleHandler.History)
		}

		campaignsGroup := protected.Group("/campaigns")
		{
			campaignsGroup.POST("", campaignHandler.Create)
			campaignsGroup.GET("", campaignHandler.List)
			campaignsGroup.GET("/:id", campaignHandler.Get)
			campaignsGroup.PATCH("/:id", campaignHandler.Update)
			campaignsGroup.DELETE("/:id", campaignHandler.Delete)
			campaignsGroup.PATCH("/:id/status", campaignHandler.UpdateStatus)
			campaignsGroup.POST("/:id/schedule", campaignHandler.Schedule)
			campaignsGroup.GET("/:id/targets", campaignHandler.Targets)
			campaignsGroup.POST("/:id/emails/draft", campaignHandler.DraftEmails)
			campaignsGroup.GET("/:id/emails", campaignHandler.ListEmails)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 SalesFlow API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cfg.EnableCronJobs {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
