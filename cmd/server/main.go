package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	customerapp "github.com/lumiera/backend/internal/application/customer"
	identityapp "github.com/lumiera/backend/internal/application/identity"
	mediaapp "github.com/lumiera/backend/internal/application/media"
	newsletterapp "github.com/lumiera/backend/internal/application/newsletter"
	notificationapp "github.com/lumiera/backend/internal/application/notification"
	promotionapp "github.com/lumiera/backend/internal/application/promotion"
	welcomeapp "github.com/lumiera/backend/internal/application/welcome"
	domainnotification "github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/lumiera/backend/internal/infrastructure/auth"
	"github.com/lumiera/backend/internal/infrastructure/cache"
	"github.com/lumiera/backend/internal/infrastructure/config"
	"github.com/lumiera/backend/internal/infrastructure/event"
	"github.com/lumiera/backend/internal/infrastructure/logger"
	"github.com/lumiera/backend/internal/infrastructure/notification"
	"github.com/lumiera/backend/internal/infrastructure/persistence"
	"github.com/lumiera/backend/internal/infrastructure/storage"
	"github.com/lumiera/backend/internal/interfaces/http/handler"
	"github.com/lumiera/backend/internal/interfaces/http/middleware"
	"github.com/lumiera/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Lumiera Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	identityRepo := persistence.NewGormAuthIdentityRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	newsletterRepo := persistence.NewGormNewsletterRepository(db.DB)

	// Notification dispatcher: HTTP provider when configured, stub otherwise
	var dispatcher domainnotification.Dispatcher
	if cfg.Notification.Endpoint != "" {
		httpDispatcher, err := notification.NewHTTPDispatcher(cfg.Notification, log)
		if err != nil {
			log.Fatal("Failed to initialize notification dispatcher", zap.Error(err))
		}
		dispatcher = httpDispatcher
		log.Info("Notification dispatcher configured", zap.String("endpoint", cfg.Notification.Endpoint))
	} else {
		dispatcher = notification.NewStubDispatcher(log)
		log.Warn("No notification endpoint configured, emails will be logged only")
	}

	// Object storage: S3/R2-compatible when configured, stub otherwise
	var objectStorage storage.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage configured", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("No storage bucket configured, file operations will be in-memory")
	}

	// Idempotency store for event handlers: Redis when enabled, in-memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idempotencyStore = redisStore
		log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
	}

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)

	// Initialize application services
	registrationService := customerapp.NewRegistrationService(customerRepo, identityRepo, eventBus)
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(identityRepo, customerRepo, jwtService, log)
	welcomeService := welcomeapp.NewWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher, cfg.Welcome, log)
	newsletterService := newsletterapp.NewNewsletterService(newsletterRepo, log)
	promotionQueryService := promotionapp.NewQueryService(promotionRepo)
	notificationLogService := notificationapp.NewLogService(notificationRepo)
	mediaService := mediaapp.NewMediaService(objectStorage, log)

	// Register event handlers for cross-context integration
	// Customer registered -> issue welcome promotion and send welcome email.
	// Wrapped for idempotent delivery keyed by event ID.
	customerCreatedHandler := welcomeapp.NewCustomerCreatedHandler(welcomeService, log)
	eventBus.Subscribe(event.NewIdempotentHandler(customerCreatedHandler, idempotencyStore, log))

	// Customer deleted -> remove orphaned credentials
	customerDeletedHandler := welcomeapp.NewCustomerDeletedHandler(identityRepo, log)
	eventBus.Subscribe(customerDeletedHandler)

	log.Info("Event handlers registered",
		zap.Strings("customer_created_events", customerCreatedHandler.EventTypes()),
		zap.Strings("customer_deleted_events", customerDeletedHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	customerHandler := handler.NewCustomerHandler(registrationService)
	authHandler := handler.NewAuthHandler(authService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	promotionHandler := handler.NewPromotionHandler(promotionQueryService)
	notificationHandler := handler.NewNotificationHandler(notificationLogService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (no auth, no group prefix)
	engine.GET("/health", systemHandler.Health)

	// Customer JWT middleware, applied per route group below
	requireCustomerAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		Logger:     log,
	})

	r := router.NewRouter(engine)

	// Storefront routes (public)
	storeRoutes := router.NewDomainGroup("store", "/store")
	storeRoutes.POST("/customers", customerHandler.Register)
	storeRoutes.POST("/customers/check-email", customerHandler.CheckEmail)
	storeRoutes.POST("/newsletter", newsletterHandler.Subscribe)
	storeRoutes.DELETE("/newsletter", newsletterHandler.Unsubscribe)

	// Storefront account routes (authenticated customer)
	accountRoutes := storeRoutes.Group("account", "/customers/me")
	accountRoutes.Use(requireCustomerAuth)
	accountRoutes.GET("", customerHandler.Me)
	accountRoutes.POST("", customerHandler.UpdateMe)

	// Authentication routes (public)
	authRoutes := router.NewDomainGroup("auth", "/auth/customer")
	authRoutes.POST("/emailpass", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)

	// Admin routes (authenticated)
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(requireCustomerAuth)
	adminRoutes.GET("/customers", customerHandler.List)
	adminRoutes.GET("/customers/:id", customerHandler.Get)
	adminRoutes.DELETE("/customers/:id", customerHandler.Delete)
	adminRoutes.GET("/promotions", promotionHandler.List)
	adminRoutes.GET("/promotions/code/:code", promotionHandler.GetByCode)
	adminRoutes.GET("/promotions/:id", promotionHandler.Get)
	adminRoutes.GET("/notifications", notificationHandler.List)
	adminRoutes.GET("/notifications/:id", notificationHandler.Get)
	adminRoutes.DELETE("/files", mediaHandler.Delete)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(storeRoutes).
		Register(authRoutes).
		Register(adminRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
