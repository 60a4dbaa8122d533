package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telemind_backend/database"
	"telemind_backend/internal/auth"
	"telemind_backend/internal/config"
	"telemind_backend/internal/email"
	"telemind_backend/internal/handlers"
	"telemind_backend/internal/logger"
	"telemind_backend/internal/middleware"
	"telemind_backend/internal/repositories"
	"telemind_backend/internal/routes"
	"telemind_backend/internal/services"
	"telemind_backend/internal/validator"
	"telemind_backend/internal/workers"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedDoctors(gormDB); err != nil {
		logger.Fatal("Failed to seed doctors", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый *gin.Engine.
// Вынесен отдельно, чтобы в тестах поднимать приложение без main.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Отправка писем: реальный SMTP, если он настроен, иначе лог-заглушка.
	var sender email.Sender
	if cfg.Email.SMTPHost != "" {
		sender = email.NewSMTPSender(cfg)
		logger.Info("Email sender initialized", "smtp_host", cfg.Email.SMTPHost)
	} else {
		sender = &email.LogSender{}
		logger.Warn("SMTP is not configured. Emails will be logged instead of sent.")
	}

	notificationWorker := workers.NewNotificationWorker(sender, cfg.Notifications.QueueSize)
	notificationWorker.Start(ctx)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer, userRepo := initializeServices(gormDB, tokens, notificationWorker)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)

	authMW := middleware.AuthMiddleware(tokens, userRepo)
	routes.RegisterRoutes(ginRouter, appHandlers, authMW)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, tokens *auth.TokenManager, notifier services.Notifier) (*services.ServiceContainer, repositories.UserRepository) {
	userRepo := repositories.NewUserRepository(gormDB)
	doctorRepo := repositories.NewDoctorRepository(gormDB)
	appointmentRepo := repositories.NewAppointmentRepository(gormDB)

	userService := services.NewUserService(userRepo, tokens)
	doctorService := services.NewDoctorService(doctorRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, userRepo, doctorRepo, notifier)

	return &services.ServiceContainer{
		UserService:        userService,
		DoctorService:      doctorService,
		AppointmentService: appointmentService,
	}, userRepo
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		DoctorHandler:      handlers.NewDoctorHandler(baseHandler, container.DoctorService),
		AppointmentHandler: handlers.NewAppointmentHandler(baseHandler, container.AppointmentService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	corsConfig := cors.DefaultConfig()
	if cfg.Server.ClientOrigin != "" {
		corsConfig.AllowOrigins = []string{cfg.Server.ClientOrigin}
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	return router
}
