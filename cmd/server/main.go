package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sharebrasil-ops/internal/adapters/http/middleware"
	"sharebrasil-ops/internal/adapters/http/routes"
	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/adapters/storage"
	"sharebrasil-ops/internal/config"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "sharebrasil-ops/docs" // Swagger docs
)

// @title Share Brasil Operations API
// @version 1.0
// @description API administrativa da operação de compartilhamento de aeronaves Share Brasil
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@sharebrasil.com.br

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host ops.sharebrasil.com.br
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Structured logger
	zlog, err := logger.New(cfg.IsDev())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to auto migrate", zap.Error(err))
	}
	zlog.Info("database migration completed")

	// Object store for payroll document content
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.NewS3Store(ctx, cfg.Storage)
	cancel()
	if err != nil {
		zlog.Fatal("failed to initialize object store", zap.Error(err))
	}

	// Scheduled housekeeping (expired refresh tokens)
	maintenance := services.NewMaintenanceService(db, zlog)
	maintenance.Start()
	defer maintenance.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Share Brasil Operations API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass dependencies for injection)
	routes.Setup(app, db, cfg, store, zlog)

	// Graceful shutdown
	go gracefulShutdown(app, zlog)

	// Start server
	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("mode", cfg.AppMode),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, zlog *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Error("error during shutdown", zap.Error(err))
	}
	zlog.Info("server stopped gracefully")
}
