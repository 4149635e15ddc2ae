package routes

import (
	"time"

	"masterbike/internal/adapters/http/handlers"
	"masterbike/internal/adapters/http/middleware"
	"masterbike/internal/adapters/persistence/repositories"
	"masterbike/internal/config"
	"masterbike/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	bikeRepo := repositories.NewBikeRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	rentalRepo := repositories.NewRentalRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	repairRepo := repositories.NewRepairRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	inventoryService := services.NewInventoryService(inventoryRepo)
	rentalService := services.NewRentalService(bikeRepo, rentalRepo)
	purchaseService := services.NewPurchaseService(inventoryRepo, purchaseRepo)
	repairService := services.NewRepairService(repairRepo)
	receiptService := services.NewReceiptService(rentalService, purchaseService, repairService)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	bikeHandler := handlers.NewBikeHandler(rentalService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	repairHandler := handlers.NewRepairHandler(repairService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	cartHandler := handlers.NewCartHandler(inventoryService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Catalog (public, cacheable)
	api.Get("/bikes", middleware.CacheControl(5*time.Minute), bikeHandler.List)
	api.Get("/inventory", middleware.CacheControl(5*time.Minute), inventoryHandler.List)

	// Storefront orders (public)
	api.Get("/rentals/quote", rentalHandler.Quote)
	api.Post("/rentals", middleware.StrictRateLimiter(), rentalHandler.Create)
	api.Post("/purchase", middleware.StrictRateLimiter(), purchaseHandler.Create)
	api.Post("/repairs", repairHandler.Create)
	api.Post("/cart/validate", cartHandler.Validate)

	// Receipt downloads (public)
	api.Get("/rentals/:id/receipt", receiptHandler.RentalReceipt)
	api.Get("/purchases/:id/receipt", receiptHandler.PurchaseReceipt)
	api.Get("/repairs/:id/receipt", receiptHandler.RepairReceipt)

	// Auth (public, rate limited)
	api.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Post("/employees/register", middleware.AuthRateLimiter(), authHandler.EmployeeRegister)
	api.Post("/employees/login", middleware.AuthRateLimiter(), authHandler.EmployeeLogin)
	api.Post("/auth/refresh", authHandler.RefreshToken)
	api.Post("/logout", authHandler.Logout)

	// Authenticated routes
	auth := api.Group("", middleware.AuthMiddleware(cfg))
	auth.Get("/auth/me", authHandler.Me)
	auth.Post("/auth/logout-all", authHandler.LogoutAll)

	// Management surface (employee/admin)
	staff := auth.Group("", middleware.EmployeeOrAdmin())
	staff.Get("/inventory/:id", inventoryHandler.Get)
	staff.Post("/inventory", inventoryHandler.Create)
	staff.Put("/inventory/:id", inventoryHandler.Update)
	staff.Delete("/inventory/:id", inventoryHandler.Delete)

	staff.Get("/rentals", rentalHandler.List)
	staff.Put("/rentals/:id/complete", rentalHandler.Complete)
	staff.Put("/rentals/:id/cancel", rentalHandler.Cancel)

	staff.Get("/purchases", purchaseHandler.List)

	staff.Get("/repairs", repairHandler.List)
	staff.Put("/repairs/:id", repairHandler.UpdateStatus)

	// Admin only
	admin := auth.Group("", middleware.AdminOnly())
	admin.Post("/employees/admin-register", authHandler.AdminRegister)
	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id/active", userHandler.SetActive)
	admin.Delete("/users/:id", userHandler.Delete)
}
