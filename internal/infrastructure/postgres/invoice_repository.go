package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
// Para la creación atómica de cabecera + líneas se usa vía TxRunner.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, owner_id, kind, counterparty_name, date, subtotal, tax, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.OwnerID, invoice.Kind, invoice.CounterpartyName, invoice.Date,
		invoice.Subtotal, invoice.Tax, invoice.Total, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *InvoiceRepo) CreateItem(ctx context.Context, item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, product_name, quantity, price, total, created_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.InvoiceID, item.ProductID, item.ProductName,
		item.Quantity, item.Price, item.Total, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura del dueño.
func (r *InvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, kind, counterparty_name, date, subtotal, tax, total, status, created_at, updated_at
		FROM invoices WHERE owner_id = $1 AND id = $2`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, ownerID, id).Scan(
		&inv.ID, &inv.OwnerID, &inv.Kind, &inv.CounterpartyName, &inv.Date,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByOwnerAndKind lista las facturas del dueño por tipo (venta o compra).
func (r *InvoiceRepo) ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]entity.Invoice, error) {
	query := `
		SELECT id, owner_id, kind, counterparty_name, date, subtotal, tax, total, status, created_at, updated_at
		FROM invoices WHERE owner_id = $1 AND kind = $2 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.OwnerID, &inv.Kind, &inv.CounterpartyName, &inv.Date,
			&inv.Subtotal, &inv.Tax, &inv.Total, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// ListItems lista las líneas de una factura.
func (r *InvoiceRepo) ListItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, COALESCE(product_id::text, ''), product_name, quantity, price, total, created_at
		FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.Price, &it.Total, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera (contraparte, fecha, estado de pago).
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET counterparty_name = $3, date = $4, status = $5, updated_at = $6
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		invoice.OwnerID, invoice.ID, invoice.CounterpartyName, invoice.Date,
		invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura del dueño. Las líneas caen por FK ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
