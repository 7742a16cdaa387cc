package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/analytics"
	"github.com/tu-usuario/gestion-pro/internal/application/auth"
	"github.com/tu-usuario/gestion-pro/internal/application/billing"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	PartyUC     *usecase.PartyUseCase
	LedgerUC    *usecase.LedgerUseCase
	DashboardUC *analytics.DashboardUseCase
	PDFUC       *billing.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales y Purchases comparten el handler de facturas, parametrizado
	// por tipo.
	mountInvoices := func(group fiber.Router, kind string) {
		h := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, kind)
		group.Post("/", h.Create)
		group.Get("/", h.List)
		group.Get("/:id", h.GetByID)
		group.Put("/:id", h.Update)
		group.Delete("/:id", h.Delete)
		group.Get("/:id/pdf", h.DownloadPDF)
	}
	mountInvoices(protected.Group("/sales"), entity.InvoiceKindSale)
	mountInvoices(protected.Group("/purchases"), entity.InvoiceKindPurchase)

	// Customers y Vendors comparten el handler de contrapartes.
	mountParties := func(group fiber.Router, kind string) {
		h := NewPartyHandler(deps.PartyUC, kind)
		group.Post("/", h.Create)
		group.Get("/", h.List)
		group.Get("/:id", h.GetByID)
		group.Put("/:id", h.Update)
		group.Delete("/:id", h.Delete)
	}
	mountParties(protected.Group("/customers"), entity.PartyKindCustomer)
	mountParties(protected.Group("/vendors"), entity.PartyKindVendor)

	// Ledger (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/", ledgerHandler.Create)
	ledgerGroup.Get("/", ledgerHandler.List)
	ledgerGroup.Get("/statement/:party_id", ledgerHandler.Statement)
	ledgerGroup.Get("/statement/:party_id/export", ledgerHandler.ExportStatement)
	ledgerGroup.Delete("/:id", ledgerHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
