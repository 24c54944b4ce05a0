package routes

import (
	"sharebrasil-ops/internal/adapters/http/handlers"
	"sharebrasil-ops/internal/adapters/http/middleware"
	"sharebrasil-ops/internal/adapters/persistence/repositories"
	"sharebrasil-ops/internal/adapters/storage"
	"sharebrasil-ops/internal/config"
	"sharebrasil-ops/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, store storage.ObjectStore, log *zap.Logger) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	flightRequestRepo := repositories.NewFlightRequestRepository(db)
	flightPlanRepo := repositories.NewFlightPlanRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	rateRepo := repositories.NewHourlyRateRepository(db)
	crewHoursRepo := repositories.NewCrewHoursRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	payrollRepo := repositories.NewPayrollRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg, log)
	userService := services.NewUserService(userRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	flightService := services.NewFlightService(flightRequestRepo, flightPlanRepo, notificationService, log)
	rateService := services.NewRateService(rateRepo)
	crewHoursService := services.NewCrewHoursService(crewHoursRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	payrollService := services.NewPayrollService(payrollRepo, store, log)
	benefitService := services.NewBenefitService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	flightHandler := handlers.NewFlightHandler(flightService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	rateHandler := handlers.NewRateHandler(rateService)
	crewHoursHandler := handlers.NewCrewHoursHandler(crewHoursService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	payrollHandler := handlers.NewPayrollHandler(payrollService)
	benefitHandler := handlers.NewBenefitHandler(benefitService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public + protected)
	setupAuthRoutes(apiV1.Group("/auth"), authHandler, cfg)

	// User management routes (Coordinator only)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.CoordinatorOnly())
	setupUserRoutes(userRoutes, userHandler)

	// Profile routes (authenticated users)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, userHandler)

	// Flight routes (authenticated users; coordinator gates per route)
	flightRoutes := apiV1.Group("/flights")
	flightRoutes.Use(middleware.AuthMiddleware(cfg))
	setupFlightRoutes(flightRoutes, flightHandler)

	// Notification routes (authenticated users)
	notificationRoutes := apiV1.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware(cfg))
	notificationRoutes.Use(middleware.NoCacheHeaders())
	setupNotificationRoutes(notificationRoutes, notificationHandler)

	// Hourly rate routes (authenticated; writes are coordinator only)
	rateRoutes := apiV1.Group("/rates")
	rateRoutes.Use(middleware.AuthMiddleware(cfg))
	setupRateRoutes(rateRoutes, rateHandler)

	// Crew flight-hour ledger routes (pilot/coordinator)
	crewRoutes := apiV1.Group("/crew-hours")
	crewRoutes.Use(middleware.AuthMiddleware(cfg))
	crewRoutes.Use(middleware.PilotOrCoordinator())
	setupCrewHoursRoutes(crewRoutes, crewHoursHandler)

	// Expense report routes (authenticated users, owner scoped)
	expenseRoutes := apiV1.Group("/expenses")
	expenseRoutes.Use(middleware.AuthMiddleware(cfg))
	setupExpenseRoutes(expenseRoutes, expenseHandler)

	// Payroll document routes (authenticated users, owner scoped)
	payrollRoutes := apiV1.Group("/payroll")
	payrollRoutes.Use(middleware.AuthMiddleware(cfg))
	setupPayrollRoutes(payrollRoutes, payrollHandler)

	// Benefit calculator routes (authenticated users)
	benefitRoutes := apiV1.Group("/benefits")
	benefitRoutes.Use(middleware.AuthMiddleware(cfg))
	benefitRoutes.Post("/balance", benefitHandler.PeriodBalance)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUserRoutes configures user management routes (Coordinator only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/:id", handler.GetUser)
	router.Put("/:id", handler.UpdateUser)
	router.Delete("/:id", handler.DeleteUser)
}

// setupProfileRoutes configures profile routes (authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.GetProfile)
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", middleware.StrictRateLimiter(), handler.ChangePassword)
}

// setupFlightRoutes configures flight request and flight plan routes.
// Requesters submit and cancel; the coordinator drives everything else.
func setupFlightRoutes(router fiber.Router, handler *handlers.FlightHandler) {
	router.Post("/requests", handler.Submit)
	router.Get("/requests/mine", handler.ListMyRequests)
	router.Get("/requests/:id", handler.GetRequest)
	router.Post("/requests/:id/cancel", handler.Cancel)

	coordinatorRoutes := router.Group("")
	coordinatorRoutes.Use(middleware.CoordinatorOnly())
	coordinatorRoutes.Get("/requests", handler.ListRequests)
	coordinatorRoutes.Post("/requests/:id/approve", handler.Approve)
	coordinatorRoutes.Post("/requests/:id/schedule", handler.Schedule)

	router.Get("/plans", handler.ListPlans)
	router.Get("/plans/:id", handler.GetPlan)
	router.Post("/plans/:id/cancel", handler.CancelPlan)

	coordinatorRoutes.Post("/plans/:id/confirm", handler.Confirm)

	crewRoutes := router.Group("")
	crewRoutes.Use(middleware.PilotOrCoordinator())
	crewRoutes.Post("/plans/:id/start", handler.Start)
	crewRoutes.Post("/plans/:id/complete", handler.Complete)
}

// setupNotificationRoutes configures notification routes
func setupNotificationRoutes(router fiber.Router, handler *handlers.NotificationHandler) {
	router.Get("/", handler.List)
	router.Post("/:id/read", handler.MarkRead)
}

// setupRateRoutes configures hourly rate routes
func setupRateRoutes(router fiber.Router, handler *handlers.RateHandler) {
	router.Get("/", handler.List)
	router.Get("/active/:registration", handler.FindActive)
	router.Get("/:id", handler.Get)

	coordinatorRoutes := router.Group("")
	coordinatorRoutes.Use(middleware.CoordinatorOnly())
	coordinatorRoutes.Post("/", handler.Create)
	coordinatorRoutes.Put("/:id", handler.Update)
	coordinatorRoutes.Delete("/:id", handler.Delete)
}

// setupCrewHoursRoutes configures crew flight-hour ledger routes
func setupCrewHoursRoutes(router fiber.Router, handler *handlers.CrewHoursHandler) {
	router.Get("/", handler.List)
	router.Get("/summary/:pilot_id", handler.Summary)
	router.Get("/:id", handler.Get)

	coordinatorRoutes := router.Group("")
	coordinatorRoutes.Use(middleware.CoordinatorOnly())
	coordinatorRoutes.Post("/", handler.Create)
	coordinatorRoutes.Put("/:id", handler.Update)
	coordinatorRoutes.Delete("/:id", handler.Delete)
}

// setupExpenseRoutes configures expense report routes
func setupExpenseRoutes(router fiber.Router, handler *handlers.ExpenseHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupPayrollRoutes configures payroll document routes
func setupPayrollRoutes(router fiber.Router, handler *handlers.PayrollHandler) {
	router.Post("/documents", handler.Upload)
	router.Get("/documents", handler.List)
	router.Get("/documents/:id", handler.Get)
	router.Get("/documents/:id/download", handler.Download)
	router.Delete("/documents/:id", handler.Delete)
}
