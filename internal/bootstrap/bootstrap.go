package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/lucasmt/monitoria/internal/app/auth"
	appControllers "github.com/lucasmt/monitoria/internal/app/controllers"
	appMigrations "github.com/lucasmt/monitoria/internal/app/migrations"
	appRepos "github.com/lucasmt/monitoria/internal/app/repositories"
	appRoutes "github.com/lucasmt/monitoria/internal/app/routes"
	appServices "github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/config"
	"github.com/lucasmt/monitoria/internal/db"
	appMiddleware "github.com/lucasmt/monitoria/internal/middleware"
	pkgAuth "github.com/lucasmt/monitoria/internal/pkg/auth"
	"github.com/lucasmt/monitoria/internal/pkg/logger"
	"github.com/lucasmt/monitoria/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	SchoolService      appServices.SchoolService
	MonitorService     appServices.MonitorService
	StudentService     appServices.StudentService
	SubjectService     appServices.SubjectService
	GradeService       appServices.GradeService
	ObservationService appServices.ObservationService
	DashboardService   appServices.DashboardService

	AuthController        *appControllers.AuthController
	SchoolController      *appControllers.SchoolController
	MonitorController     *appControllers.MonitorController
	StudentController     *appControllers.StudentController
	SubjectController     *appControllers.SubjectController
	GradeController       *appControllers.GradeController
	ObservationController *appControllers.ObservationController
	DashboardController   *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	SessionService *pkgAuth.SessionService
	AuthzService   *appAuth.AuthorizationService
	Logger         zerolog.Logger
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
// seeds the default administrator.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultAdmin(context.Background(), database, cfg, lgr); err != nil {
		// Startup proceeds; the admin can be inserted manually.
		lgr.Error().Err(err).Msg("Failed to seed default administrator")
	}

	return database.Pool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.Student,
		deps.Repos.Subject,
		deps.Repos.Grade,
		deps.Repos.Observation,
	)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		TokenTTL:  cfg.SessionTTL(),
		Issuer:    cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Monitor, deps.SessionService, lgr)
	deps.SchoolService = appServices.NewSchoolService(deps.Repos.School, deps.AuthzService)
	deps.MonitorService = appServices.NewMonitorService(deps.Repos.Monitor, deps.Repos.School, deps.AuthzService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Student, deps.Repos.School, deps.AuthzService, lgr)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.Subject, deps.Repos.School, deps.AuthzService, lgr)
	deps.GradeService = appServices.NewGradeService(deps.Repos.Grade, deps.AuthzService, lgr)
	deps.ObservationService = appServices.NewObservationService(deps.Repos.Observation, deps.AuthzService, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.Stats, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService, cfg.Session.CookieName)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, appControllers.CookieSettings{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.SessionTTL(),
		Secure: cfg.Session.CookieSecure,
	})
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.MonitorController = appControllers.NewMonitorController(deps.MonitorService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.ObservationController = appControllers.NewObservationController(deps.ObservationService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SchoolController,
		deps.MonitorController,
		deps.StudentController,
		deps.SubjectController,
		deps.GradeController,
		deps.ObservationController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
