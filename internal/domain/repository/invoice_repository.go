package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas y sus
// líneas. La cabecera y las líneas se insertan juntas dentro de una
// transacción (ver postgres.TxRunner).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error)
	ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]entity.Invoice, error)
	ListItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, ownerID, id string) error
}
