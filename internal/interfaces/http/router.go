package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StockScan-api/internal/application/auth"
	"github.com/jhoicas/StockScan-api/internal/application/catalog"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductRepo repository.ProductRepository
	ScanUC      *catalog.ScanUseCase
	CreateUC    *catalog.CreateProductUseCase
	AdjustUC    *catalog.AdjustUseCase
	DashboardUC *catalog.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductRepo, deps.ScanUC, deps.CreateUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/resolve/:code", productHandler.Resolve)
	products.Get("/:id", productHandler.GetByID)

	// Inventory adjustments (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustUC)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)

	// Dashboard (protegido)
	dashboardGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboardGroup.Get("/summary", dashboardHandler.Summary)
}
