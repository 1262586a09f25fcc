package app

import (
	"fmt"
	"time"

	"iinreg_backend/internal/config"
	"iinreg_backend/internal/handlers"
	"iinreg_backend/internal/iinclient"
	"iinreg_backend/internal/logger"
	"iinreg_backend/internal/middleware"
	"iinreg_backend/internal/models"
	"iinreg_backend/internal/repositories"
	"iinreg_backend/internal/routes"
	"iinreg_backend/internal/services"
	"iinreg_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// Уникальные нарушения переводятся в gorm.ErrDuplicatedKey -
		// на этом держится обработка гонок регистрации
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	defer sqlDB.Close()

	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.UserData{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный gin.Engine: middleware, сервисы, маршруты.
// Вынесен отдельно, чтобы тесты поднимали тот же роутер через httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	fetcher := iinclient.New(iinclient.Config{
		BaseURL:    cfg.Provider.BaseURL,
		APIKey:     cfg.Provider.APIKey,
		Timeout:    time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.Provider.MaxRetries,
	})

	serviceContainer := initializeServices(cfg, fetcher)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AdminAuthMiddleware(cfg.Admin.JWTSecret))

	return ginRouter
}

// ServiceContainer - собранные сервисы приложения
type ServiceContainer struct {
	AuthService   services.AuthService
	PersonService services.PersonService
	AdminService  services.AdminService
}

func initializeServices(cfg *config.Config, fetcher services.PersonFetcher) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	userDataRepo := repositories.NewUserDataRepository()

	return &ServiceContainer{
		AuthService:   services.NewAuthService(userRepo, cfg.Auth.BcryptCost, cfg.Auth.PasswordLength),
		PersonService: services.NewPersonService(userRepo, userDataRepo, fetcher),
		AdminService: services.NewAdminService(userRepo, services.AdminConfig{
			Password:  cfg.Admin.Password,
			JWTSecret: cfg.Admin.JWTSecret,
			TokenTTL:  time.Duration(cfg.Admin.TokenTTLMinutes) * time.Minute,
		}),
	}
}

func initializeHandlers(cfg *config.Config, sc *ServiceContainer) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		Auth:   handlers.NewAuthHandler(base, sc.AuthService, cfg.Auth.CookieTTLDays),
		Person: handlers.NewPersonHandler(base, sc.PersonService),
		Admin:  handlers.NewAdminHandler(base, sc.AdminService),
	}
}
