// Package bootstrap wires configuration, database, repositories, services
// and controllers together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/GeetAtGit/ReportVerse/internal/app/controllers"
	appMigrations "github.com/GeetAtGit/ReportVerse/internal/app/migrations"
	appRepos "github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	appRoutes "github.com/GeetAtGit/ReportVerse/internal/app/routes"
	appServices "github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/config"
	"github.com/GeetAtGit/ReportVerse/internal/db"
	appMiddleware "github.com/GeetAtGit/ReportVerse/internal/middleware"
	pkgAuth "github.com/GeetAtGit/ReportVerse/internal/pkg/auth"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/filestorage"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/helpers"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/logger"
	"github.com/GeetAtGit/ReportVerse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	MentorshipService     appServices.MentorshipService
	IssueService          appServices.IssueService
	AchievementService    appServices.AchievementService
	AcademicService       appServices.AcademicService
	DashboardService      appServices.DashboardService
	AuthController        *appControllers.AuthController
	MentorshipController  *appControllers.MentorshipController
	IssueController       *appControllers.IssueController
	AchievementController *appControllers.AchievementController
	AcademicController    *appControllers.AcademicController
	DashboardController   *appControllers.DashboardController
	HealthController      *appControllers.HealthController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	ConnectionManager     *db.ConnectionManager
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the demo accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.ConnectionManager, *pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")

	connManager := db.NewConnectionManager(cfg, lgr)

	connectCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPool, err := connManager.Connect(connectCtx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best effort; a partial seed must not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return connManager, dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, connManager *db.ConnectionManager, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		ConnectionManager: connManager,
		Logger:            lgr,
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Base URL must match the static file serving mount in the server
	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.MentorshipRepository,
		deps.JWTService,
		lgr,
	)
	deps.MentorshipService = appServices.NewMentorshipService(
		deps.Repos.UserRepository,
		deps.Repos.MentorshipRepository,
		deps.Repos.AcademicRepository,
		lgr,
	)
	deps.IssueService = appServices.NewIssueService(
		deps.Repos.IssueRepository,
		deps.Repos.MentorshipRepository,
		lgr,
	)
	deps.AchievementService = appServices.NewAchievementService(
		deps.Repos.AchievementRepository,
		deps.Repos.MentorshipRepository,
		lgr,
	)
	deps.AcademicService = appServices.NewAcademicService(
		deps.Repos.AcademicRepository,
		deps.FileStorage,
		lgr,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.UserRepository,
		deps.Repos.MentorshipRepository,
		deps.Repos.IssueRepository,
		deps.Repos.AchievementRepository,
		helpers.ParseDuration(cfg.Client.PendingThreshold, 72*time.Hour),
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService, lgr)
	deps.IssueController = appControllers.NewIssueController(deps.IssueService, lgr)
	deps.AchievementController = appControllers.NewAchievementController(deps.AchievementService, lgr)
	deps.AcademicController = appControllers.NewAcademicController(deps.AcademicService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)
	deps.HealthController = appControllers.NewHealthController(connManager, cfg.Server.Version, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.ErrorHandlerMiddleware())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.MentorshipController,
		deps.IssueController,
		deps.AchievementController,
		deps.AcademicController,
		deps.DashboardController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
