package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura (venta o compra) del dueño.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator}
}

// GenerateInvoicePDF carga la factura con sus líneas y delega en el
// generador. Devuelve ErrNotFound si la factura no es del dueño.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, ownerID, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.ListItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, invoice, items)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de factura %s: %w", invoiceID, err)
	}
	return pdf, nil
}
