package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	apphttp "github.com/tu-usuario/gestion-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceStore struct {
	invoices map[string]*entity.Invoice
	deleted  []string
}

var _ repository.InvoiceRepository = (*fakeInvoiceStore)(nil)

func (f *fakeInvoiceStore) Create(_ context.Context, inv *entity.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceStore) CreateItem(_ context.Context, _ *entity.InvoiceItem) error {
	return nil
}

func (f *fakeInvoiceStore) GetByID(_ context.Context, ownerID, id string) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok || inv.OwnerID != ownerID {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceStore) ListByOwnerAndKind(_ context.Context, ownerID, kind string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		if inv.OwnerID == ownerID && inv.Kind == kind {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceStore) ListItems(_ context.Context, _ string) ([]entity.InvoiceItem, error) {
	return nil, nil
}

func (f *fakeInvoiceStore) Update(_ context.Context, inv *entity.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceStore) Delete(_ context.Context, ownerID, id string) error {
	if inv, ok := f.invoices[id]; ok && inv.OwnerID == ownerID {
		delete(f.invoices, id)
		f.deleted = append(f.deleted, id)
	}
	return nil
}

type passthroughTxRunner struct {
	repo repository.InvoiceRepository
}

func (r *passthroughTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(r.repo)
}

// newInvoiceTestApp monta el handler de facturas dos veces, igual que el
// router real: /sales con kind=sale y /purchases con kind=purchase.
func newInvoiceTestApp(store *fakeInvoiceStore) *fiber.App {
	uc := usecase.NewInvoiceUseCase(store, &passthroughTxRunner{repo: store}, nil)
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	for _, m := range []struct {
		prefix string
		kind   string
	}{
		{"/sales", entity.InvoiceKindSale},
		{"/purchases", entity.InvoiceKindPurchase},
	} {
		h := apphttp.NewInvoiceHandler(uc, nil, m.kind)
		g := protected.Group(m.prefix)
		g.Get("/:id", h.GetByID)
		g.Put("/:id", h.Update)
		g.Delete("/:id", h.Delete)
		g.Get("/:id/pdf", h.DownloadPDF)
	}
	return app
}

func seedPurchase(store *fakeInvoiceStore, id string) {
	store.invoices[id] = &entity.Invoice{
		ID:               id,
		OwnerID:          testOwnerID,
		Kind:             entity.InvoiceKindPurchase,
		CounterpartyName: "Distribuidora Norte",
		Date:             time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Subtotal:         decimal.NewFromInt(100),
		Tax:              decimal.NewFromInt(19),
		Total:            decimal.NewFromInt(119),
		Status:           entity.InvoiceStatusPending,
	}
}

func doInvoiceRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", testToken(t))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del guard por tipo de factura
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: una compra no debe poder actualizarse por la ruta de ventas.
func TestInvoiceHandler_UpdatePorRutaDeOtroKind_Retorna404(t *testing.T) {
	store := &fakeInvoiceStore{invoices: map[string]*entity.Invoice{}}
	seedPurchase(store, "inv-1")
	app := newInvoiceTestApp(store)

	resp := doInvoiceRequest(t, app, http.MethodPut, "/sales/inv-1", `{"status":"paid"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"PUT sobre una compra vía /sales debe responder 404")
	assert.Equal(t, entity.InvoiceStatusPending, store.invoices["inv-1"].Status,
		"la compra no debe haberse modificado")
}

// Caso 2: la misma actualización por la ruta correcta sí aplica.
func TestInvoiceHandler_UpdatePorRutaCorrecta_Aplica(t *testing.T) {
	store := &fakeInvoiceStore{invoices: map[string]*entity.Invoice{}}
	seedPurchase(store, "inv-1")
	app := newInvoiceTestApp(store)

	resp := doInvoiceRequest(t, app, http.MethodPut, "/purchases/inv-1", `{"status":"paid"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.InvoiceStatusPaid, body["status"])
	assert.Equal(t, entity.InvoiceStatusPaid, store.invoices["inv-1"].Status)
}

// Caso 3: DELETE por la ruta del otro tipo no debe borrar nada.
func TestInvoiceHandler_DeletePorRutaDeOtroKind_Retorna404(t *testing.T) {
	store := &fakeInvoiceStore{invoices: map[string]*entity.Invoice{}}
	seedPurchase(store, "inv-1")
	app := newInvoiceTestApp(store)

	resp := doInvoiceRequest(t, app, http.MethodDelete, "/sales/inv-1", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, store.deleted, "nada debe haberse eliminado")
	assert.Contains(t, store.invoices, "inv-1")
}

// Caso 4: el PDF tampoco se sirve por la ruta del otro tipo.
func TestInvoiceHandler_PDFPorRutaDeOtroKind_Retorna404(t *testing.T) {
	store := &fakeInvoiceStore{invoices: map[string]*entity.Invoice{}}
	seedPurchase(store, "inv-1")
	app := newInvoiceTestApp(store)

	resp := doInvoiceRequest(t, app, http.MethodGet, "/sales/inv-1/pdf", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Caso 5: GET mantiene el mismo contrato que las mutaciones.
func TestInvoiceHandler_GetPorRutaDeOtroKind_Retorna404(t *testing.T) {
	store := &fakeInvoiceStore{invoices: map[string]*entity.Invoice{}}
	seedPurchase(store, "inv-1")
	app := newInvoiceTestApp(store)

	resp := doInvoiceRequest(t, app, http.MethodGet, "/sales/inv-1", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2 := doInvoiceRequest(t, app, http.MethodGet, "/purchases/inv-1", "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
