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

	"hospital-management-api/config"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/infrastructure/cache"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger

	rateLimiter *middleware.RateLimiter
}

// New connects to Postgres and Redis, applies pending migrations and wires
// every layer.
func New(cfg *config.Config) (*App, error) {
	log := SetupLogger(cfg.App.Env)
	app := &App{Config: cfg, Log: log}

	if err := RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	app.Server = app.initializeServer()

	return app, nil
}

// SetupLogger configures the standard logrus logger: JSON to stdout, debug
// level in development.
func SetupLogger(env string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// RunMigrations brings the schema up to date.
func RunMigrations(cfg config.DBConfig) error {
	migrator, err := database.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up()
}

func (app *App) initializeServer() *http.Server {
	cfg, db, log := app.Config, app.DB, app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	billRepo := repository.NewBillRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Services
	tokenStore := service.NewRedisTokenStore(app.RedisClient)
	auditService := service.NewAuditService(log, auditLogRepo)
	scheduler := service.NewAppointmentScheduler(
		doctorProfileRepo,
		appointmentRepo,
		auditService,
		service.NewSchedulePolicy(cfg.Scheduler, cfg.App.Location()),
		log,
	)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, jwtService, tokenStore, auditService)
	patientUsecase := usecase.NewPatientProfileUsecase(db, log, userRepo, patientProfileRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorProfileRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, scheduler, appointmentRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, medicalRecordRepo)
	billUsecase := usecase.NewBillUsecase(log, billRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditService)

	app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	router := deliveryHttp.NewRouter(deliveryHttp.RouterDeps{
		AuthHandler:          handler.NewAuthHandler(authUsecase, customValidator),
		PatientHandler:       handler.NewPatientHandler(patientUsecase, customValidator),
		DoctorHandler:        handler.NewDoctorHandler(doctorUsecase, customValidator),
		AppointmentHandler:   handler.NewAppointmentHandler(appointmentUsecase),
		MedicalRecordHandler: handler.NewMedicalRecordHandler(medicalRecordUsecase),
		BillHandler:          handler.NewBillHandler(billUsecase),
		AuditLogHandler:      handler.NewAuditLogHandler(auditLogUsecase),
		AuthMiddleware:       middleware.NewAuthMiddleware(jwtService, tokenStore, log),
		CORSMiddleware:       middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
		RateLimiter:          app.rateLimiter,
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.rateLimiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			app.Close()
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	app.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
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
