package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-management/config"
	deliveryHttp "go-clinic-management/internal/delivery/http"
	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/infrastructure/cache"
	"go-clinic-management/internal/infrastructure/database"
	"go-clinic-management/internal/repository"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/jwt"
	"go-clinic-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
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

// Policies are the relationship and lifecycle rules parsed from config.
type Policies struct {
	PatientDelete    entity.DeletePolicy
	DoctorDelete     entity.DeletePolicy
	StatusTransition entity.TransitionPolicy
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := NewLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	policies, err := ParsePolicies(cfg.Policy)
	if err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, log, policies, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// NewLogger returns a JSON logrus logger at level, falling back to info.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

// ParsePolicies validates the configured policies. Appointments always need a
// patient, so nullify is refused for patient deletes.
func ParsePolicies(cfg config.PolicyConfig) (Policies, error) {
	patientDelete, err := entity.ParseDeletePolicy(cfg.PatientDelete)
	if err != nil {
		return Policies{}, fmt.Errorf("PATIENT_DELETE_POLICY: %w", err)
	}
	if patientDelete == entity.DeletePolicyNullify {
		return Policies{}, fmt.Errorf("PATIENT_DELETE_POLICY: %q is not allowed, appointments require a patient", patientDelete)
	}

	doctorDelete, err := entity.ParseDeletePolicy(cfg.DoctorDelete)
	if err != nil {
		return Policies{}, fmt.Errorf("DOCTOR_DELETE_POLICY: %w", err)
	}

	transition, err := entity.ParseTransitionPolicy(cfg.StatusTransition)
	if err != nil {
		return Policies{}, fmt.Errorf("STATUS_TRANSITION_POLICY: %w", err)
	}

	return Policies{
		PatientDelete:    patientDelete,
		DoctorDelete:     doctorDelete,
		StatusTransition: transition,
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, policies Policies, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	credentials, err := usecase.NewDemoCredentials(cfg.Auth.DemoPassword, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, policies.PatientDelete)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo, policies.DoctorDelete)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, policies.StatusTransition)
	authUsecase := usecase.NewAuthUsecase(log, credentials, jwtService, redisClient)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	healthHandler := handler.NewHealthHandler(sqlDB, redisClient, cfg.App.Env)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Access, jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.Access.RoleHeader)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		appointmentHandler,
		authHandler,
		healthHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	log.WithFields(logrus.Fields{
		"access_mode":       cfg.Access.Mode,
		"patient_delete":    policies.PatientDelete,
		"doctor_delete":     policies.DoctorDelete,
		"status_transition": policies.StatusTransition,
	}).Info("Policies configured")

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
