package routes

import (
	"time"

	"attendly-api/internal/adapters/http/handlers"
	"attendly-api/internal/adapters/http/middleware"
	"attendly-api/internal/adapters/persistence/kvstore"
	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/config"
	"attendly-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *kvstore.Store, cfg *config.Config) {
	// Initialize repositories
	recordRepo := repositories.NewRecordRepository(store)
	sessionRepo := repositories.NewSessionRepository(store)
	credentialRepo := repositories.NewCredentialRepository(store)

	// Initialize services
	authService := services.NewAuthService(credentialRepo, sessionRepo, cfg)
	attendanceService := services.NewAttendanceService(
		recordRepo,
		time.Duration(cfg.Attendance.ListLatencyMS)*time.Millisecond,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Attendance routes (authenticated)
	attendanceRoutes := apiV1.Group("/attendance")
	attendanceRoutes.Use(middleware.AuthMiddleware(cfg))
	attendanceRoutes.Post("/check-in", attendanceHandler.CheckIn)
	attendanceRoutes.Post("/check-out", attendanceHandler.CheckOut)
	attendanceRoutes.Get("/status", attendanceHandler.Status)

	// Record browsing (admin only)
	attendanceRoutes.Get("/records", middleware.AdminOnly(), attendanceHandler.ListRecords)
}
