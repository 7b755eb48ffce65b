package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedrolucasmota/obralog-api/internal/application/auth"
	"github.com/pedrolucasmota/obralog-api/internal/application/ledger"
	"github.com/pedrolucasmota/obralog-api/internal/application/report"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SiteUC      *usecase.SiteUseCase
	CatalogUC   *usecase.CatalogUseCase
	InventoryUC *usecase.SiteInventoryUseCase
	MovementUC  *ledger.RegisterMovementUseCase
	HistoryUC   *ledger.HistoryUseCase
	LoanUC      *usecase.ToolLoanUseCase
	RentedUC    *usecase.RentedEquipmentUseCase
	UserUC      *usecase.UserUseCase
	ProfileUC   *usecase.ProfileUseCase
	ReportUC    *report.MovementsReportUseCase
	UserRepo    repository.UserRepository
	ProfileRepo repository.AccessProfileRepository
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

	perm := func(module, action string) fiber.Handler {
		return RequirePermission(module, action, deps.ProfileRepo)
	}

	// Sites (protegido)
	sites := protected.Group("/sites")
	siteHandler := NewSiteHandler(deps.SiteUC)
	sites.Post("/", perm("sites", "create"), siteHandler.Create)
	sites.Get("/", siteHandler.List)
	sites.Get("/:siteId", perm("sites", "view"), siteHandler.GetByID)
	sites.Put("/:siteId", perm("sites", "edit"), siteHandler.Update)
	sites.Delete("/:siteId", perm("sites", "delete"), siteHandler.Delete)

	// Catálogo global (protegido)
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Post("/", perm("catalog", "create"), catalogHandler.Create)
	catalog.Get("/", perm("catalog", "view"), catalogHandler.List)
	catalog.Get("/:id", perm("catalog", "view"), catalogHandler.GetByID)
	catalog.Put("/:id", perm("catalog", "edit"), catalogHandler.Update)
	catalog.Delete("/:id", perm("catalog", "delete"), catalogHandler.Delete)

	// Inventario por obra: ítems, movimientos e historial (protegido)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.MovementUC, deps.HistoryUC, deps.UserRepo)
	inv := sites.Group("/:siteId/inventory")
	inv.Post("/", perm("inventory", "create"), inventoryHandler.AddItem)
	inv.Get("/", perm("inventory", "view"), inventoryHandler.List)
	inv.Get("/:itemId", perm("inventory", "view"), inventoryHandler.GetByID)
	inv.Put("/:itemId", perm("inventory", "edit"), inventoryHandler.UpdateMetadata)
	inv.Delete("/:itemId", perm("inventory", "delete"), inventoryHandler.DeleteItem)
	inv.Post("/:itemId/movements", perm("inventory", "movements"), inventoryHandler.RegisterMovement)
	inv.Get("/:itemId/movements", perm("inventory", "view"), inventoryHandler.GetItemHistory)
	sites.Get("/:siteId/movements", perm("inventory", "view"), inventoryHandler.GetAllSiteMovements)

	// Préstamos de herramientas (protegido)
	loanHandler := NewLoanHandler(deps.LoanUC, deps.UserRepo)
	loans := sites.Group("/:siteId/loans")
	loans.Post("/", perm("loans", "create"), loanHandler.Lend)
	loans.Get("/", perm("loans", "view"), loanHandler.List)
	loans.Post("/:loanId/return", perm("loans", "edit"), loanHandler.Return)

	// Equipos alquilados (protegido)
	rentedHandler := NewRentedHandler(deps.RentedUC)
	rented := sites.Group("/:siteId/rented-equipment")
	rented.Post("/", perm("rented", "create"), rentedHandler.RegisterEntry)
	rented.Get("/", perm("rented", "view"), rentedHandler.List)
	rented.Post("/:equipmentId/exit", perm("rented", "edit"), rentedHandler.RegisterExit)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	sites.Get("/:siteId/reports/movements", perm("reports", "view"), reportHandler.DownloadMovements)

	// Usuarios (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", perm("users", "create"), userHandler.Create)
	users.Get("/", perm("users", "view"), userHandler.List)
	users.Get("/:id", perm("users", "view"), userHandler.GetByID)
	users.Put("/:id", perm("users", "edit"), userHandler.Update)
	users.Delete("/:id", perm("users", "delete"), userHandler.Delete)

	// Perfiles de acceso (protegido)
	profiles := protected.Group("/profiles")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profiles.Post("/", perm("profiles", "create"), profileHandler.Create)
	profiles.Get("/", perm("profiles", "view"), profileHandler.List)
	profiles.Get("/:id", perm("profiles", "view"), profileHandler.GetByID)
	profiles.Put("/:id", perm("profiles", "edit"), profileHandler.Update)
	profiles.Delete("/:id", perm("profiles", "delete"), profileHandler.Delete)
}
