package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-matching/config"
	deliveryHttp "doctor-matching/internal/delivery/http"
	"doctor-matching/internal/delivery/http/handler"
	"doctor-matching/internal/delivery/http/middleware"
	"doctor-matching/internal/infrastructure/database"
	"doctor-matching/internal/infrastructure/session"
	"doctor-matching/internal/repository"
	"doctor-matching/internal/service"
	"doctor-matching/internal/usecase"
	"doctor-matching/pkg/jwt"
	"doctor-matching/pkg/metrics"
	"doctor-matching/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// LoadConfig reads configuration and prepares the process logger.
// Commands that never start the server only need this much.
func LoadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")
	return cfg, log, nil
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, log, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log}

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := session.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)
	if cfg.IsDevelopment() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func migrateUp(cfg *config.Config, log *logrus.Logger) error {
	migrator, err := database.NewMigrator(cfg.DB, log)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics(registry)

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	doctorSpecialtyRepo := repository.NewDoctorSpecialtyRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	tokenRepo := repository.NewTokenRepository(redisClient)

	// Initialize services
	hasher := service.NewBcryptHasher(cfg.Security.BcryptCost)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	resolver := usecase.NewSpecialtyResolver(db, log, specialtyRepo)
	registrationUsecase := usecase.NewDoctorRegistrationUsecase(
		db, log, customValidator, hasher, doctorRepo, doctorSpecialtyRepo, resolver, auditService, appMetrics,
	)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	specialtyUsecase := usecase.NewSpecialtyUsecase(db, log, specialtyRepo)
	authUsecase := usecase.NewAuthUsecase(db, log, doctorRepo, tokenRepo, hasher, auditService, jwtService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(registrationUsecase, doctorUsecase, customValidator)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyUsecase)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	healthHandler := handler.NewHealthHandler(
		handler.HealthCheck{Name: "postgres", Ping: sqlDB.PingContext},
		handler.HealthCheck{Name: "redis", Ping: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}},
	)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenRepo)
	corsMiddleware := middleware.NewCORSMiddleware()
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(cfg.Security.APIKey)
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimit.RPS),
		Burst: cfg.RateLimit.Burst,
	})
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(appMetrics)

	if cfg.Security.APIKey == "" {
		log.Warn("API_KEY is empty, API key check disabled")
	}

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		specialtyHandler,
		authHandler,
		auditLogHandler,
		healthHandler,
		metricsHandler,
		authMiddleware,
		corsMiddleware,
		apiKeyMiddleware,
		rateLimiter,
		loggingMiddleware,
		metricsMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown completes
func (app *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	return app.waitForShutdown(serverErr)
}

// waitForShutdown blocks until an interrupt signal or a server failure
func (app *App) waitForShutdown(serverErr <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
