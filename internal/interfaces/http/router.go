package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/accounting"
	"github.com/jhoicas/Pedidos-api/internal/application/orders"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	PartyUC     *usecase.PartyUseCase
	OrderUC     *orders.OrderUseCase
	LedgerUC    *accounting.LedgerUseCase
	StatementUC *accounting.StatementUseCase
	// JWTSecret vacío = API abierta (sin AuthMiddleware ni roles).
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Con secreto configurado toda la API exige token; los borrados solo admin.
	adminOnly := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		adminOnly = RequireRole(jwt.RoleAdmin)
	}

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	partyHandler := NewPartyHandler(deps.PartyUC, deps.LedgerUC, deps.StatementUC)
	parties := api.Group("/parties")
	parties.Post("/", partyHandler.Create)
	parties.Get("/", partyHandler.List)
	parties.Get("/:id", partyHandler.GetByID)
	parties.Get("/:id/ledger", partyHandler.Ledger)
	parties.Get("/:id/statement.pdf", partyHandler.Statement)
	parties.Delete("/:id", adminOnly, partyHandler.Delete)

	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := api.Group("/orders")
	ordersGroup.Post("/reorder", orderHandler.Reorder)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id", orderHandler.Update)

	txHandler := NewTransactionHandler(deps.LedgerUC)
	api.Get("/material-transactions", txHandler.ListMaterial)
	api.Post("/financial-transactions", txHandler.CreateFinancial)
	api.Get("/financial-transactions", txHandler.ListFinancial)
}
