package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appControllers "github.com/rojgarhub/backend/internal/app/controllers"
	appMigrations "github.com/rojgarhub/backend/internal/app/migrations"
	appRepos "github.com/rojgarhub/backend/internal/app/repositories"
	appRoutes "github.com/rojgarhub/backend/internal/app/routes"
	appServices "github.com/rojgarhub/backend/internal/app/services"
	"github.com/rojgarhub/backend/internal/config"
	"github.com/rojgarhub/backend/internal/db"
	appMiddleware "github.com/rojgarhub/backend/internal/middleware"
	"github.com/rojgarhub/backend/internal/pkg/logger"
	"github.com/rojgarhub/backend/internal/seed"
)

// Dependencies holds everything the HTTP layer needs
type Dependencies struct {
	Repos                 *appRepos.Repositories
	Services              *appServices.Services
	AuthController        *appControllers.AuthController
	JobController         *appControllers.JobController
	PreparationController *appControllers.PreparationController
	SiteController        *appControllers.SiteController
	AuthMiddleware        *appMiddleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default settings.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info().Msg("Running database migrations...")
	migrationsDir := filepath.Join("internal", "app", "migrations", "sql")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, database.Pool); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	repos := appRepos.NewRepositories(database)
	services := appServices.NewServices(repos, cfg)

	return &Dependencies{
		Repos:                 repos,
		Services:              services,
		AuthController:        appControllers.NewAuthController(services.AuthService),
		JobController:         appControllers.NewJobController(services.JobService),
		PreparationController: appControllers.NewPreparationController(services.PreparationService),
		SiteController:        appControllers.NewSiteController(services.SiteService, cfg.Server.BaseURL),
		AuthMiddleware:        appMiddleware.NewAuthMiddleware(services.JWTService),
	}
}

// SetupRouter creates the gin engine and registers all routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.JobController,
		deps.PreparationController,
		deps.SiteController,
		deps.AuthMiddleware,
	)

	return router
}
