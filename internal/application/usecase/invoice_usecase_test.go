package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/internal/domain/validate"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeInvoiceRepo guarda facturas y líneas en memoria.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]entity.InvoiceItem // por invoiceID
	failOn   string                          // "create_item" fuerza error en CreateItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		items:    make(map[string][]entity.InvoiceItem),
	}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	cp := *invoice
	f.invoices[invoice.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) CreateItem(ctx context.Context, item *entity.InvoiceItem) error {
	if f.failOn == "create_item" {
		return errors.New("fallo simulado al insertar línea")
	}
	f.items[item.InvoiceID] = append(f.items[item.InvoiceID], *item)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok || inv.OwnerID != ownerID {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		if inv.OwnerID == ownerID && inv.Kind == kind {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	return f.items[invoiceID], nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	cp := *invoice
	f.invoices[invoice.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, ownerID, id string) error {
	delete(f.invoices, id)
	delete(f.items, id)
	return nil
}

// fakeTxRunner ejecuta el callback contra una copia del repo y solo
// publica los cambios si no hubo error, imitando commit/rollback.
type fakeTxRunner struct {
	repo *fakeInvoiceRepo
	runs int
}

func (f *fakeTxRunner) RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	f.runs++
	scratch := newFakeInvoiceRepo()
	scratch.failOn = f.repo.failOn
	if err := fn(scratch); err != nil {
		return err // rollback: no se publica nada
	}
	for id, inv := range scratch.invoices {
		f.repo.invoices[id] = inv
	}
	for id, items := range scratch.items {
		f.repo.items[id] = append(f.repo.items[id], items...)
	}
	return nil
}

func fixedClock(t time.Time) usecase.Clock {
	return func() time.Time { return t }
}

const testOwner = "owner-1"

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUC(repo *fakeInvoiceRepo) (*usecase.InvoiceUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{repo: repo}
	return usecase.NewInvoiceUseCase(repo, tx, fixedClock(testNow)), tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — recálculo de totales en el servidor
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_RecalculaTotales(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, tx := newTestUC(repo)

	out, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, dto.CreateInvoiceRequest{
		CounterpartyName: "Comercial Andina",
		Tax:              decimal.NewFromFloat(7.50),
		Items: []dto.InvoiceItemRequest{
			{ProductName: "Camión de juguete", Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// 3 × 25 = 75; 75 + 7.50 = 82.50
	assert.True(t, decimal.NewFromFloat(75).Equal(out.Subtotal), "subtotal: %s", out.Subtotal)
	assert.True(t, decimal.NewFromFloat(82.50).Equal(out.Total), "total: %s", out.Total)
	require.Len(t, out.Items, 1)
	assert.True(t, decimal.NewFromFloat(75).Equal(out.Items[0].Total))

	assert.Equal(t, 1, tx.runs, "la escritura debe pasar por la transacción")
	assert.Len(t, repo.invoices, 1, "la cabecera debe quedar persistida")
}

func TestInvoiceCreate_DefaultsPendienteYFecha(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, _ := newTestUC(repo)

	out, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindPurchase, dto.CreateInvoiceRequest{
		CounterpartyName: "Distribuidora del Sur",
		Items: []dto.InvoiceItemRequest{
			{ProductName: "Cuaderno A4", Quantity: decimal.NewFromInt(10), Price: decimal.NewFromFloat(2.50)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPending, out.Status, "sin estado explícito la factura queda pendiente")
	assert.True(t, testNow.Equal(out.Date), "sin fecha explícita se usa el instante actual")
	assert.Equal(t, entity.InvoiceKindPurchase, out.Kind)
}

func TestInvoiceCreate_SinLineas_FallaValidacion(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, tx := newTestUC(repo)

	_, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, dto.CreateInvoiceRequest{
		CounterpartyName: "Comercial Andina",
	})

	var ruleErr *validate.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "items", ruleErr.Field)
	assert.Equal(t, 0, tx.runs, "una factura inválida no debe tocar la transacción")
}

func TestInvoiceCreate_LineaInvalida_FallaAntesDeEscribir(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, tx := newTestUC(repo)

	_, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, dto.CreateInvoiceRequest{
		CounterpartyName: "Comercial Andina",
		Items: []dto.InvoiceItemRequest{
			{ProductName: "Camión de juguete", Quantity: decimal.Zero, Price: decimal.NewFromInt(25)},
		},
	})

	var ruleErr *validate.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, 0, tx.runs)
	assert.Empty(t, repo.invoices, "nada debe persistirse si una línea es inválida")
}

func TestInvoiceCreate_FalloEnLinea_NoDejasCabeceraHuerfana(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.failOn = "create_item"
	uc, _ := newTestUC(repo)

	_, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, dto.CreateInvoiceRequest{
		CounterpartyName: "Comercial Andina",
		Items: []dto.InvoiceItemRequest{
			{ProductName: "Camión de juguete", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(25)},
		},
	})
	require.Error(t, err)
	assert.Empty(t, repo.invoices, "rollback: la cabecera no debe quedar sin líneas")
}

// ──────────────────────────────────────────────────────────────────────────────
// List — filtros y estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func seedInvoices(t *testing.T, uc *usecase.InvoiceUseCase) {
	t.Helper()
	for _, in := range []dto.CreateInvoiceRequest{
		{CounterpartyName: "Comercial Andina", Date: testNow, Status: entity.InvoiceStatusPaid,
			Items: []dto.InvoiceItemRequest{{ProductName: "A", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)}}},
		{CounterpartyName: "Ferretería El Tornillo", Date: testNow.AddDate(0, 0, -3), Status: entity.InvoiceStatusPending,
			Items: []dto.InvoiceItemRequest{{ProductName: "B", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(30)}}},
		{CounterpartyName: "Comercial Andina", Date: testNow.AddDate(0, 0, -20), Status: entity.InvoiceStatusPending,
			Items: []dto.InvoiceItemRequest{{ProductName: "C", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50)}}},
	} {
		_, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, in)
		require.NoError(t, err)
	}
}

func TestInvoiceList_FiltraPorEstadoYCalculaStats(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, _ := newTestUC(repo)
	seedInvoices(t, uc)

	out, err := uc.List(context.Background(), testOwner, entity.InvoiceKindSale, dto.ListFilters{
		Status: entity.InvoiceStatusPending,
	})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	// Pendientes: 60 + 50 = 110
	assert.True(t, decimal.NewFromInt(110).Equal(out.Stats.PendingAmount), "pendiente: %s", out.Stats.PendingAmount)
	assert.Equal(t, 2, out.Stats.PendingCount)
}

func TestInvoiceList_RangoRelativo(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, _ := newTestUC(repo)
	seedInvoices(t, uc)

	out, err := uc.List(context.Background(), testOwner, entity.InvoiceKindSale, dto.ListFilters{Range: "7d"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "solo las facturas de los últimos 7 días")

	out, err = uc.List(context.Background(), testOwner, entity.InvoiceKindSale, dto.ListFilters{Range: "today"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	// La de hoy vale 100 y está pagada
	assert.True(t, decimal.NewFromInt(100).Equal(out.Stats.TodayValue), "hoy: %s", out.Stats.TodayValue)
}

func TestInvoiceList_BusquedaPorContraparte(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, _ := newTestUC(repo)
	seedInvoices(t, uc)

	// Sin acentos: debe encontrar "Ferretería El Tornillo"
	out, err := uc.List(context.Background(), testOwner, entity.InvoiceKindSale, dto.ListFilters{Search: "ferreteria"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Ferretería El Tornillo", out.Items[0].CounterpartyName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / aislamiento por dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_CambiaEstadoSinTocarTotales(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, _ := newTestUC(repo)

	created, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, dto.CreateInvoiceRequest{
		CounterpartyName: "Comercial Andina",
		Tax:              decimal.NewFromInt(5),
		Items: []dto.InvoiceItemRequest{
			{ProductName: "A", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	paid := entity.InvoiceStatusPaid
	updated, err := uc.Update(context.Background(), testOwner, created.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, entity.InvoiceStatusPaid, updated.Status)
	assert.True(t, created.Total.Equal(updated.Total), "el total no debe cambiar al actualizar la cabecera")
}

func TestInvoiceGetByID_OtroDueno_NoEncontrado(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc, _ := newTestUC(repo)

	created, err := uc.Create(context.Background(), testOwner, entity.InvoiceKindSale, dto.CreateInvoiceRequest{
		CounterpartyName: "Comercial Andina",
		Items: []dto.InvoiceItemRequest{
			{ProductName: "A", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	out, err := uc.GetByID(context.Background(), "otro-owner", created.ID)
	require.NoError(t, err)
	assert.Nil(t, out, "las facturas de otro dueño no deben ser visibles")
}
