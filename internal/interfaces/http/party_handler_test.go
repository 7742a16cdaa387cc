package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
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

type fakePartyStore struct {
	parties map[string]*entity.Party
	deleted []string
}

var _ repository.PartyRepository = (*fakePartyStore)(nil)

func (f *fakePartyStore) Create(_ context.Context, p *entity.Party) error {
	cp := *p
	f.parties[p.ID] = &cp
	return nil
}

func (f *fakePartyStore) GetByID(_ context.Context, ownerID, id string) (*entity.Party, error) {
	p, ok := f.parties[id]
	if !ok || p.OwnerID != ownerID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePartyStore) ListByOwnerAndKind(_ context.Context, ownerID, kind string) ([]entity.Party, error) {
	var out []entity.Party
	for _, p := range f.parties {
		if p.OwnerID == ownerID && p.Kind == kind {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePartyStore) Update(_ context.Context, p *entity.Party) error {
	cp := *p
	f.parties[p.ID] = &cp
	return nil
}

func (f *fakePartyStore) Delete(_ context.Context, ownerID, id string) error {
	if p, ok := f.parties[id]; ok && p.OwnerID == ownerID {
		delete(f.parties, id)
		f.deleted = append(f.deleted, id)
	}
	return nil
}

type emptyLedgerStore struct{}

var _ repository.LedgerRepository = (*emptyLedgerStore)(nil)

func (emptyLedgerStore) Create(_ context.Context, _ *entity.LedgerEntry) error { return nil }
func (emptyLedgerStore) GetByID(_ context.Context, _, _ string) (*entity.LedgerEntry, error) {
	return nil, nil
}
func (emptyLedgerStore) ListByOwner(_ context.Context, _ string) ([]entity.LedgerEntry, error) {
	return nil, nil
}
func (emptyLedgerStore) ListByParty(_ context.Context, _, _ string) ([]entity.LedgerEntry, error) {
	return nil, nil
}
func (emptyLedgerStore) Delete(_ context.Context, _, _ string) error { return nil }

// newPartyTestApp monta el handler de contrapartes dos veces, igual que el
// router real: /customers con kind=customer y /vendors con kind=vendor.
func newPartyTestApp(store *fakePartyStore) *fiber.App {
	uc := usecase.NewPartyUseCase(store, emptyLedgerStore{})
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	for _, m := range []struct {
		prefix string
		kind   string
	}{
		{"/customers", entity.PartyKindCustomer},
		{"/vendors", entity.PartyKindVendor},
	} {
		h := apphttp.NewPartyHandler(uc, m.kind)
		g := protected.Group(m.prefix)
		g.Get("/:id", h.GetByID)
		g.Put("/:id", h.Update)
		g.Delete("/:id", h.Delete)
	}
	return app
}

func seedVendor(store *fakePartyStore, id string) {
	store.parties[id] = &entity.Party{
		ID:      id,
		OwnerID: testOwnerID,
		Kind:    entity.PartyKindVendor,
		Name:    "Distribuidora Norte",
		Email:   "ventas@norte.local",
	}
}

func doPartyRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
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
// Tests del guard por tipo de contraparte
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un proveedor no debe poder actualizarse por la ruta de clientes.
func TestPartyHandler_UpdatePorRutaDeOtroKind_Retorna404(t *testing.T) {
	store := &fakePartyStore{parties: map[string]*entity.Party{}}
	seedVendor(store, "party-1")
	app := newPartyTestApp(store)

	resp := doPartyRequest(t, app, http.MethodPut, "/customers/party-1", `{"name":"Otro Nombre"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"PUT sobre un proveedor vía /customers debe responder 404")
	assert.Equal(t, "Distribuidora Norte", store.parties["party-1"].Name,
		"el proveedor no debe haberse modificado")
}

// Caso 2: la misma actualización por la ruta correcta sí aplica.
func TestPartyHandler_UpdatePorRutaCorrecta_Aplica(t *testing.T) {
	store := &fakePartyStore{parties: map[string]*entity.Party{}}
	seedVendor(store, "party-1")
	app := newPartyTestApp(store)

	resp := doPartyRequest(t, app, http.MethodPut, "/vendors/party-1", `{"name":"Otro Nombre"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Otro Nombre", store.parties["party-1"].Name)
}

// Caso 3: DELETE por la ruta del otro tipo no debe borrar nada.
func TestPartyHandler_DeletePorRutaDeOtroKind_Retorna404(t *testing.T) {
	store := &fakePartyStore{parties: map[string]*entity.Party{}}
	seedVendor(store, "party-1")
	app := newPartyTestApp(store)

	resp := doPartyRequest(t, app, http.MethodDelete, "/customers/party-1", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, store.deleted, "nada debe haberse eliminado")
	assert.Contains(t, store.parties, "party-1")
}
