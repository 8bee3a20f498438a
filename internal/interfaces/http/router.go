package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SantosRojas/inventory-api/internal/application/auth"
	"github.com/SantosRojas/inventory-api/internal/application/dashboard"
	"github.com/SantosRojas/inventory-api/internal/application/usecase"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	DashboardUC     *dashboard.UseCase
	OverduePDF      dashboard.OverdueReportGenerator
	InventoryUC     *usecase.InventoryUseCase
	InstitutionUC   *usecase.CatalogUseCase
	ModelUC         *usecase.CatalogUseCase
	ServiceUC       *usecase.CatalogUseCase
	RoleUC          *usecase.RoleUseCase
	UserUC          *usecase.UserUseCase
	InventoryTimeUC *usecase.InventoryTimeUseCase
	JWTSecret       string
	Development     bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	em := newErrorMapper(deps.Development)
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, em)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Dashboard: el alcance sale del token, nunca de la petición
	dashboardGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.OverduePDF, em)
	dashboardGroup.Get("/summary", dashboardHandler.Summary)
	dashboardGroup.Get("/model-distribution", dashboardHandler.ModelDistribution)
	dashboardGroup.Get("/model-distribution-by-institution", dashboardHandler.ModelDistributionByInstitution)
	dashboardGroup.Get("/inventory-progress-by-institution", dashboardHandler.InventoryProgressByInstitution)
	dashboardGroup.Get("/inventory-progress-by-service", dashboardHandler.InventoryProgressByService)
	dashboardGroup.Get("/state-by-service", dashboardHandler.StateByService)
	dashboardGroup.Get("/state-by-model", dashboardHandler.StateByModel)
	dashboardGroup.Get("/top-inventory-takers", dashboardHandler.TopInventoryTakers)
	dashboardGroup.Get("/overdue-maintenance-summary", dashboardHandler.OverdueMaintenanceSummary)
	dashboardGroup.Get("/overdue-maintenance-summary/pdf", dashboardHandler.OverdueMaintenancePDF)

	// Inventario
	inventoryGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, em)
	inventoryGroup.Get("/", inventoryHandler.List)
	inventoryGroup.Post("/", inventoryHandler.Create)
	inventoryGroup.Post("/bulk", inventoryHandler.BulkCreate)
	inventoryGroup.Get("/latest", inventoryHandler.ListLatestByUser)
	inventoryGroup.Get("/serial/:serial", inventoryHandler.GetBySerial)
	inventoryGroup.Get("/qr/:qr", inventoryHandler.GetByQR)
	inventoryGroup.Get("/model/:modelId", inventoryHandler.ListByModel)
	inventoryGroup.Get("/institution/:institutionId", inventoryHandler.ListByInstitution)
	inventoryGroup.Get("/institution/:institutionId/current-year", inventoryHandler.ListCurrentYear)
	inventoryGroup.Get("/institution/:institutionId/not-inventoried", inventoryHandler.ListNotInventoried)
	inventoryGroup.Get("/institution/:institutionId/overdue", inventoryHandler.ListOverdue)
	inventoryGroup.Get("/service/:serviceId", inventoryHandler.ListByService)
	inventoryGroup.Get("/status/:status", inventoryHandler.ListByStatus)
	inventoryGroup.Get("/taker/:userId", inventoryHandler.ListByTaker)
	inventoryGroup.Get("/:id", inventoryHandler.GetByID)
	inventoryGroup.Patch("/:id", inventoryHandler.Update)
	inventoryGroup.Delete("/:id", inventoryHandler.Delete)

	// Catálogos
	mountCatalog(protected.Group("/institutions"), NewCatalogHandler(deps.InstitutionUC, em, "Institución no encontrada"))
	mountCatalog(protected.Group("/models"), NewCatalogHandler(deps.ModelUC, em, "Modelo no encontrado"))
	mountCatalog(protected.Group("/services"), NewCatalogHandler(deps.ServiceUC, em, "Servicio no encontrado"))

	// Roles (solo privilegiados)
	rolesGroup := protected.Group("/roles", RequirePrivileged())
	roleHandler := NewRoleHandler(deps.RoleUC, em)
	rolesGroup.Get("/", roleHandler.List)
	rolesGroup.Get("/:id", roleHandler.GetByID)
	rolesGroup.Post("/", roleHandler.Create)
	rolesGroup.Patch("/:id", roleHandler.Update)
	rolesGroup.Delete("/:id", roleHandler.Delete)

	// Usuarios
	usersGroup := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, em)
	usersGroup.Get("/me", userHandler.Me)
	usersGroup.Get("/", RequirePrivileged(), userHandler.List)
	usersGroup.Get("/:id", AuthorizeSelfOrAdmin(), userHandler.GetByID)
	usersGroup.Patch("/:id", AuthorizeSelfOrAdmin(), userHandler.Update)
	usersGroup.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleRoot), userHandler.Delete)

	// Sesiones cronometradas
	timesGroup := protected.Group("/inventory-times")
	timeHandler := NewInventoryTimeHandler(deps.InventoryTimeUC, em)
	timesGroup.Get("/", timeHandler.List)
	timesGroup.Post("/", timeHandler.Create)
	timesGroup.Get("/user/:userId", timeHandler.ListByUser)
	timesGroup.Get("/user/:userId/stats", timeHandler.StatsByUser)
	timesGroup.Get("/:id", timeHandler.GetByID)
	timesGroup.Patch("/:id", timeHandler.Update)
	timesGroup.Delete("/:id", timeHandler.Delete)
}

func mountCatalog(g fiber.Router, h *CatalogHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/name/:name", h.GetByName)
	g.Get("/:id", h.GetByID)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
