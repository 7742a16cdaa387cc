package dto

import (
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
	"github.com/tu-usuario/gestion-pro/internal/domain/stock"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del negocio: ventas, compras, inventario y libro, todos derivados
// por agregación completa sobre los datos del dueño.
type DashboardSummaryDTO struct {
	Sales     ledger.Stats  `json:"sales"`
	Purchases ledger.Stats  `json:"purchases"`
	Stock     stock.Summary `json:"stock"`
	Ledger    ledger.Totals `json:"ledger"`

	ProductCount  int `json:"product_count"`
	CustomerCount int `json:"customer_count"`
	VendorCount   int `json:"vendor_count"`
}
