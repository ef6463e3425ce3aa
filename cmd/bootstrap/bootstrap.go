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

	"hms-backend/config"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/infrastructure/cache"
	"hms-backend/internal/infrastructure/database"
	gormrepo "hms-backend/internal/repository"
	"hms-backend/internal/repository/memory"
	"hms-backend/internal/repository/mongodb"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

// StartupError reports which dependency kept the application from booting.
type StartupError struct {
	Stage string
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	Log          *logrus.Logger
	DB           *gorm.DB
	MongoClient  *mongo.Client
	RedisClient  *redis.Client
	Repositories *repository.Repositories
	Sessions     repository.SessionRepository
	Services     *Services
	Server       *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	app := &App{}

	// Setup logger
	app.Log = setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, &StartupError{Stage: "config", Err: err}
	}
	app.Config = cfg
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		app.Log.SetLevel(level)
	}
	app.Log.Info("Configuration loaded successfully")

	if err := app.openStorage(ctx); err != nil {
		app.Close()
		return nil, err
	}

	if err := app.openSessions(ctx); err != nil {
		app.Close()
		return nil, err
	}

	handler, services := NewHandler(cfg, app.Log, app.Repositories, app.Sessions)
	app.Services = services
	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: handler,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// openStorage connects the backend named by DB_DRIVER. One pool is shared by
// every repository.
func (app *App) openStorage(ctx context.Context) error {
	cfg := app.Config

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		level := logger.Info
		if cfg.IsProduction() {
			level = logger.Warn
		}
		db, err := database.NewPostgresConnection(cfg.DB, level)
		if err != nil {
			return &StartupError{Stage: "postgres", Err: err}
		}
		app.DB = db
		app.Repositories = gormrepo.NewRepositories(db)

	case config.DriverMongo:
		client, db, err := database.NewMongoConnection(ctx, cfg.DB)
		if err != nil {
			return &StartupError{Stage: "mongodb", Err: err}
		}
		app.MongoClient = client
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return &StartupError{Stage: "mongodb indexes", Err: err}
		}
		app.Repositories = mongodb.NewRepositories(db)

	case config.DriverMemory:
		app.Log.Warn("Using in-memory storage; data is lost on restart")
		app.Repositories = memory.NewRepositories()

	default:
		return &StartupError{Stage: "storage", Err: fmt.Errorf("%w: %q", config.ErrUnknownDBDriver, cfg.DB.Driver)}
	}

	app.Log.Infof("Storage ready (%s)", cfg.DB.Driver)
	return nil
}

func (app *App) openSessions(ctx context.Context) error {
	if !app.Config.Redis.Enabled() {
		app.Log.Warn("REDIS_HOST not set; sessions are stateless and logout cannot revoke tokens")
		app.Sessions = gormrepo.NewStatelessSessionRepository()
		return nil
	}

	redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis, app.Log)
	if err != nil {
		return &StartupError{Stage: "redis", Err: err}
	}
	app.RedisClient = redisClient
	app.Sessions = gormrepo.NewRedisSessionRepository(redisClient)
	return nil
}

// EnsureAdmin seeds the configured admin account on an empty user base.
func (app *App) EnsureAdmin(ctx context.Context) error {
	return app.Services.Auth.EnsureAdmin(ctx, app.Config.Admin)
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.MongoClient.Disconnect(ctx); err != nil {
			app.Log.Warnf("Failed to disconnect MongoDB: %v", err)
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
