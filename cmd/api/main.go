package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
	"github.com/Ashish-04-codes/Portfolio/internal/background"
	"github.com/Ashish-04-codes/Portfolio/internal/config"
	"github.com/Ashish-04-codes/Portfolio/internal/database"
	"github.com/Ashish-04-codes/Portfolio/internal/docstore"
	"github.com/Ashish-04-codes/Portfolio/internal/geo"
	"github.com/Ashish-04-codes/Portfolio/internal/handlers"
	"github.com/Ashish-04-codes/Portfolio/internal/kvstore"
	"github.com/Ashish-04-codes/Portfolio/internal/media"
	middlewareCustom "github.com/Ashish-04-codes/Portfolio/internal/middleware"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/routes"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
	pkglogger "github.com/Ashish-04-codes/Portfolio/pkg/logger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Run migrations, then open the pool
	if err := database.Migrate(&cfg.Database, logger); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Shared key-value store for security and activity state. Redis when
	// configured, in-memory otherwise; either way wrapped so storage
	// failures degrade to no-ops instead of blocking logins.
	var kv kvstore.Store
	if cfg.Redis.Address != "" {
		redisStore, err := kvstore.NewRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix, logger)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisStore.Close()
		kv = redisStore
	} else {
		logger.Info("no REDIS_ADDR configured, using in-memory store")
		kv = kvstore.NewMemory()
	}
	kv = kvstore.NewSafe(kv, logger)

	// Document store, optionally fronted by an in-process cache
	var docs docstore.Store = docstore.NewPostgres(db)
	if cfg.Cache.Enabled {
		cached, err := docstore.NewCached(docs, cfg.Cache.MaxSizeMB, time.Duration(cfg.Cache.TTLSeconds)*time.Second, logger)
		if err != nil {
			logger.Error("failed to initialize cache", slog.Any("error", err))
			os.Exit(1)
		}
		docs = cached
	}

	// Auth stack
	auditLogger := pkglogger.NewAuditLogger(logger)
	tokenManager := auth.NewTokenManager(cfg.Auth.SessionSecret, cfg.Auth.SessionExpiry)
	provider := auth.NewStaticProvider(cfg.Auth.AdminUserID, cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, cfg.Auth.TOTPSecret)

	// Services
	securityService := services.NewSecurityService(kv, logger)
	activityService := services.NewActivityService(kv, logger)
	authService := services.NewAuthService(provider, tokenManager, securityService, activityService, logger, auditLogger)
	projectService := services.NewProjectService(docs, logger)
	postService := services.NewBlogPostService(docs, logger)
	profileService := services.NewProfileService(docs, logger)
	skillService := services.NewSkillService(docs, logger)
	siteConfigService := services.NewSiteConfigService(docs, logger)
	visitService := services.NewVisitService(docs, geo.NewClient(logger), logger)

	var emailSender services.EmailSender
	if cfg.Email.FromAddress != "" && cfg.Email.ContactTo != "" {
		sender, err := services.NewAWSSESEmailSender(cfg.Email.AWSRegion, cfg.Email.FromAddress, cfg.Email.ContactTo, logger)
		if err != nil {
			logger.Error("failed to initialize email sender", slog.Any("error", err))
			os.Exit(1)
		}
		emailSender = sender
	}
	contactService := services.NewContactService(emailSender, logger)

	uploader := media.NewCloudinaryUploader(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset, logger)

	// Idle-session monitor
	monitor := background.NewSessionMonitor(securityService, logger, background.SessionMonitorConfig{
		Interval: cfg.Auth.MonitorInterval,
		OnWarning: func(remaining int) {
			auditLogger.LogSessionEvent("session_warning", remaining)
		},
		OnTimeout: func() {
			securityService.ClearSessionActivity()
			activityService.Log(services.LogActivityParams{
				Action:     models.ActivityActionLogout,
				EntityType: models.ActivityEntityAuth,
				UserEmail:  cfg.Auth.AdminEmail,
				Details:    "Session expired due to inactivity",
			})
			auditLogger.LogSessionEvent("session_timeout", 0)
		},
	})

	ipConfig := &pkghttp.IPConfig{TrustedProxies: cfg.Server.TrustedProxies}

	// Handlers
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, monitor),
		Session:    handlers.NewSessionHandler(monitor),
		MFA:        handlers.NewMFAHandler(provider),
		Projects:   handlers.NewProjectHandler(projectService, activityService),
		Posts:      handlers.NewBlogPostHandler(postService, activityService),
		Profile:    handlers.NewProfileHandler(profileService, activityService),
		Skills:     handlers.NewSkillHandler(skillService, activityService),
		SiteConfig: handlers.NewSiteConfigHandler(siteConfigService, activityService),
		Activity:   handlers.NewActivityHandler(activityService),
		Contact:    handlers.NewContactHandler(contactService),
		Media:      handlers.NewMediaHandler(uploader, activityService),
		Visits:     handlers.NewVisitHandler(visitService, ipConfig),
	}

	// Setup CORS middleware
	corsConfig := middlewareCustom.DefaultCORSConfig(cfg.Server.AllowedOrigins)

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(corsConfig))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Register routes
	routes.RegisterRoutes(router, h, tokenManager, securityService, monitor)

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start session monitor
	monitorCtx, monitorCancel := context.WithCancel(context.Background())
	defer monitorCancel()

	go monitor.Start(monitorCtx)

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	monitorCancel()
	monitor.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
