package billing

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// InvoicePDFGenerator puerto para la representación gráfica de una factura.
// La implementación vive en infrastructure/pdf (Maroto v2).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) ([]byte, error)
}
