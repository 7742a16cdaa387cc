package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/compute"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/filter"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/internal/domain/validate"
)

// InvoiceTxRunner puerto para ejecutar la escritura de cabecera + líneas
// dentro de UNA transacción. Cierra la brecha de atomicidad: nunca queda
// una cabecera sin líneas ni líneas huérfanas por fallo parcial.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// Clock permite inyectar el instante de la consulta en los filtros
// relativos y las estadísticas (los tests fijan el reloj).
type Clock func() time.Time

// InvoiceUseCase casos de uso de facturas. Una sola implementación sirve
// ventas y compras: el kind llega por parámetro desde la ruta.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	tx   InvoiceTxRunner
	now  Clock
}

// NewInvoiceUseCase construye el caso de uso. clock nil usa time.Now.
func NewInvoiceUseCase(repo repository.InvoiceRepository, tx InvoiceTxRunner, clock Clock) *InvoiceUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &InvoiceUseCase{repo: repo, tx: tx, now: clock}
}

// Create valida cabecera y líneas, recalcula todos los totales en el
// servidor (los derivados nunca se aceptan del cliente) y escribe todo en
// una transacción. Devuelve la factura resultante con sus líneas.
func (uc *InvoiceUseCase) Create(ctx context.Context, ownerID, kind string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	now := uc.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	invoiceID := uuid.New().String()
	for _, it := range in.Items {
		item := entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Total:       compute.LineTotal(it.Quantity, it.Price),
			CreatedAt:   now,
		}
		if err := validate.InvoiceItem(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, &validate.RuleError{Field: "items", Message: "la factura debe tener al menos una línea"}
	}

	lineTotals := make([]decimal.Decimal, 0, len(items))
	for _, it := range items {
		lineTotals = append(lineTotals, it.Total)
	}
	subtotal := compute.SumLineTotals(lineTotals)

	invoice := &entity.Invoice{
		ID:               invoiceID,
		OwnerID:          ownerID,
		Kind:             kind,
		CounterpartyName: in.CounterpartyName,
		Date:             date,
		Subtotal:         subtotal,
		Tax:              in.Tax,
		Total:            compute.InvoiceTotal(subtotal, in.Tax),
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := validate.Invoice(invoice); err != nil {
		return nil, err
	}

	err := uc.tx.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
		for i := range items {
			if err := invoiceRepo.CreateItem(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// GetByID obtiene una factura del dueño con sus líneas.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	items, err := uc.repo.ListItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// List trae el snapshot por kind y aplica los filtros en memoria:
// búsqueda por contraparte/id, igualdad de estado y rango de fecha
// relativo. Incluye las estadísticas del subconjunto filtrado.
func (uc *InvoiceUseCase) List(ctx context.Context, ownerID, kind string, f dto.ListFilters) (*dto.InvoiceListResponse, error) {
	invoices, err := uc.repo.ListByOwnerAndKind(ctx, ownerID, kind)
	if err != nil {
		return nil, err
	}
	now := uc.now()

	pred := filter.And(
		filter.TextSearch(f.Search, func(i entity.Invoice) []string {
			return []string{i.CounterpartyName, i.ID}
		}),
		filter.Equals(f.Status, func(i entity.Invoice) string { return i.Status }),
		filter.DateRange(filter.Range(f.Range), now, func(i entity.Invoice) time.Time { return i.Date }),
	)
	filtered := filter.Apply(invoices, pred)

	items := make([]dto.InvoiceResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toInvoiceResponse(&filtered[i], nil))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Stats: ledger.InvoiceStats(filtered, now),
	}, nil
}

// Update aplica el patch a la cabecera (estado de pago, contraparte,
// fecha), revalida y devuelve la factura actualizada. Los totales no se
// tocan: dependen solo de las líneas y el impuesto originales.
func (uc *InvoiceUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if in.CounterpartyName != nil {
		invoice.CounterpartyName = *in.CounterpartyName
	}
	if in.Date != nil {
		invoice.Date = *in.Date
	}
	if in.Status != nil {
		invoice.Status = *in.Status
	}
	if err := validate.Invoice(invoice); err != nil {
		return nil, err
	}
	invoice.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// Delete elimina una factura del dueño (las líneas caen por FK en cascada).
func (uc *InvoiceUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

func toInvoiceResponse(inv *entity.Invoice, items []entity.InvoiceItem) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:               inv.ID,
		Kind:             inv.Kind,
		CounterpartyName: inv.CounterpartyName,
		Date:             inv.Date,
		Subtotal:         inv.Subtotal,
		Tax:              inv.Tax,
		Total:            inv.Total,
		Status:           inv.Status,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Total:       it.Total,
		})
	}
	return out
}
