package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"attendly-api/internal/adapters/http/middleware"
	"attendly-api/internal/adapters/http/routes"
	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/config"
	"attendly-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title Attendly Attendance API
// @version 1.0
// @description Employee attendance tracking API: check-in/check-out and record browsing.

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open storage
	store, err := config.OpenStorage(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open storage: %v", err)
	}

	// Seed credential directory and demo data
	seeder := config.NewSeeder(
		repositories.NewCredentialRepository(store),
		repositories.NewRecordRepository(store),
		cfg,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed storage: %v", err)
	}

	// Start the daily check-out reminder
	if cfg.Reminder.Enabled {
		reminder := services.NewReminderService(
			repositories.NewRecordRepository(store),
			cfg.Reminder.Schedule,
		)
		if err := reminder.Start(); err != nil {
			log.Fatalf("❌ Failed to start reminder: %v", err)
		}
		defer reminder.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Attendly Attendance API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
