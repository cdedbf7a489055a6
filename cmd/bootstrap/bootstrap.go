package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-dental-clinic/config"
	deliveryhttp "go-dental-clinic/internal/delivery/http"
	"go-dental-clinic/internal/delivery/http/handler"
	"go-dental-clinic/internal/delivery/http/middleware"
	"go-dental-clinic/internal/infrastructure/cache"
	"go-dental-clinic/internal/infrastructure/database"
	"go-dental-clinic/internal/repository"
	"go-dental-clinic/internal/service"
	"go-dental-clinic/internal/usecase"
	"go-dental-clinic/pkg/jwt"
	"go-dental-clinic/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Application struct {
	config      *config.Config
	log         *logrus.Logger
	db          *gorm.DB
	redisClient *redis.Client
	server      *http.Server
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Env == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db, cfg.DB); err != nil {
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	// Repositories
	patientRepo := repository.NewPatientRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Services
	jwtService := jwt.NewJWTService(cfg.JWT)
	auditService := service.NewAuditService(log, auditLogRepo)
	customValidator := validator.NewValidator()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, redisClient, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, appointmentRepo, auditService)
	treatmentUsecase := usecase.NewTreatmentUsecase(log, treatmentRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, treatmentRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(log, authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(log, patientUsecase, customValidator)
	treatmentHandler := handler.NewTreatmentHandler(log, treatmentUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(log, appointmentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(log, auditLogUsecase)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)

	router := deliveryhttp.NewRouter(&deliveryhttp.RouterConfig{
		Log:                log,
		CORS:               cfg.CORS,
		AuthMiddleware:     authMiddleware,
		AuthHandler:        authHandler,
		PatientHandler:     patientHandler,
		TreatmentHandler:   treatmentHandler,
		AppointmentHandler: appointmentHandler,
		AuditLogHandler:    auditLogHandler,
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{
		config:      cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		server:      server,
	}, nil
}

// Run starts the HTTP server and blocks until an interrupt arrives, then
// drains in-flight requests before returning.
func (app *Application) Run() error {
	errChan := make(chan error, 1)

	go func() {
		app.log.Infof("Server starting on port %s", app.config.App.Port)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		app.log.Infof("Received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.log.Info("Server stopped")
	return nil
}

func (app *Application) Close() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.log.Warnf("Failed to close redis client: %+v", err)
		}
	}

	if app.db != nil {
		if sqlDB, err := app.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				app.log.Warnf("Failed to close database: %+v", err)
			}
		}
	}
}
