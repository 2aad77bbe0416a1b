package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-appointment-service/config"
	deliveryHttp "clinic-appointment-service/internal/delivery/http"
	"clinic-appointment-service/internal/delivery/http/handler"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/infrastructure/database"
	"clinic-appointment-service/internal/repository"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/jwt"
	"clinic-appointment-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	MongoClient *mongo.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	mongoClient, mongoDB, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	app.MongoClient = mongoClient
	logrus.Info("MongoDB connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsurePrescriptionIndexes(ctx, mongoDB); err != nil {
		return nil, fmt.Errorf("failed to ensure prescription indexes: %w", err)
	}

	server, err := initializeServer(cfg, db, mongoDB)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, mongoDB *mongo.Database) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(mongoDB)

	// Usecases
	tokenUsecase := usecase.NewTokenUsecase(log, jwtService, adminRepo, doctorRepo, patientRepo)
	adminUsecase := usecase.NewAdminUsecase(log, customValidator, adminRepo, tokenUsecase, cfg.Admin)
	doctorUsecase := usecase.NewDoctorUsecase(log, customValidator, doctorRepo, appointmentRepo, tokenUsecase)
	patientUsecase := usecase.NewPatientUsecase(log, customValidator, patientRepo, appointmentRepo, tokenUsecase)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, customValidator, appointmentRepo, doctorRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, customValidator, prescriptionRepo, appointmentRepo, appointmentUsecase)

	// Seed the configured admin account
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := adminUsecase.EnsureAdmin(seedCtx); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Handlers
	adminHandler := handler.NewAdminHandler(adminUsecase, tokenUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, tokenUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, tokenUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, tokenUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, tokenUsecase, customValidator)

	// Middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Router
	router := deliveryHttp.NewRouter(adminHandler, patientHandler, doctorHandler, appointmentHandler, prescriptionHandler, corsMiddleware, loggerMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, mongo, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.MongoClient.Disconnect(ctx)
	}
}
