package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venus-soft/venus-inventory-api/internal/application/auth"
	"github.com/venus-soft/venus-inventory-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC  *ledger.UseCase
	ReportUC  *ledger.ReportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
//
// Las rutas estáticas ("/report/pdf", "/additions", "/subtractions") se
// registran antes que las parametrizadas ("/:id") para que no queden sombreadas.
func Router(app *fiber.App, deps RouterDeps) {
	// Índice de la API (público)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "Venus Inventory API",
			"version": "1.0",
			"docs":    "/swagger",
		})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ítems de inventario (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.ReportUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/report/pdf", inventoryHandler.StockReport)

	// Altas de stock (protegido)
	additions := inventory.Group("/additions")
	additionHandler := NewAdditionHandler(deps.LedgerUC)
	additions.Post("/", additionHandler.Create)
	additions.Get("/", additionHandler.List)
	additions.Get("/inventory/:id", additionHandler.ListByInventory)
	additions.Get("/:id", additionHandler.GetByID)
	additions.Delete("/:id", additionHandler.Delete)

	// Salidas de stock (protegido)
	subtractions := inventory.Group("/subtractions")
	subtractionHandler := NewSubtractionHandler(deps.LedgerUC)
	subtractions.Post("/", subtractionHandler.Create)
	subtractions.Get("/", subtractionHandler.List)
	subtractions.Get("/inventory/:id", subtractionHandler.ListByInventory)
	subtractions.Get("/:id", subtractionHandler.GetByID)
	subtractions.Delete("/:id", subtractionHandler.Delete)

	// Parametrizadas del ítem al final, para no sombrear las anteriores
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)
}
