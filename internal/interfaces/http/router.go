package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flotanet/logistica-api/internal/application/auth"
	"github.com/flotanet/logistica-api/internal/application/billing"
	"github.com/flotanet/logistica-api/internal/application/dashboard"
	"github.com/flotanet/logistica-api/internal/application/fleet"
	"github.com/flotanet/logistica-api/internal/application/inventory"
	"github.com/flotanet/logistica-api/internal/application/orders"
	"github.com/flotanet/logistica-api/internal/application/users"
	"github.com/flotanet/logistica-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StatsUC     *dashboard.StatsUseCase
	OrderUC     *orders.OrderUseCase
	InventoryUC *inventory.InventoryUseCase
	FleetUC     *fleet.FleetUseCase
	UserUC      *users.UserUseCase
	BillingUC   *billing.BillingUseCase
	JWTSecret   string
	Users       userResolver
}

// Router registra las rutas de la API. La cadena de guardas sobre cada ruta
// protegida es siempre AuthMiddleware y después el guard de autorización:
// una petición sin sesión válida recibe 401 antes de evaluar permisos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	protected.Get("/auth/me", authHandler.Me)

	// Dashboard (todos los roles)
	dashboardHandler := NewDashboardHandler(deps.StatsUC)
	protected.Get("/dashboard/stats",
		RequireCapability(rbac.ViewDashboardStats), dashboardHandler.Stats)

	// Orders
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/recent",
		RequireCapability(rbac.ViewRecentOrders), orderHandler.Recent)
	ordersGroup.Get("/my",
		RequireCapability(rbac.ViewOwnOrders), orderHandler.My)
	ordersGroup.Get("/all",
		RequireCapability(rbac.ViewAllOrders), orderHandler.All)
	ordersGroup.Post("/",
		RequireCapability(rbac.ViewAllOrders), orderHandler.Create)
	ordersGroup.Get("/:id",
		RequireCapability(rbac.ViewRecentOrders), orderHandler.GetByID)

	// Inventory
	invGroup := protected.Group("/inventory", RequireCapability(rbac.ManageInventory))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)

	// Fleet
	fleetHandler := NewFleetHandler(deps.FleetUC)
	protected.Get("/routes",
		RequireCapability(rbac.ManageRoutes), fleetHandler.Routes)
	protected.Get("/vehicles",
		RequireCapability(rbac.ManageRoutes), fleetHandler.Vehicles)

	// Users (solo admin)
	usersGroup := protected.Group("/users", RequireCapability(rbac.ManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	usersGroup.Get("/", userHandler.List)
	usersGroup.Put("/:id", userHandler.Update)

	// Billing (facturación con IVA)
	billingHandler := NewBillingHandler(deps.BillingUC)
	protected.Get("/invoices",
		RequireCapability(rbac.ViewAllOrders), billingHandler.Invoices)
	protected.Post("/invoices",
		RequireCapability(rbac.ViewAllOrders), billingHandler.CreateInvoice)
	// El widget de IVA es de solo cálculo, disponible para cualquier sesión.
	protected.Post("/billing/vat", billingHandler.CalculateVAT)
}
