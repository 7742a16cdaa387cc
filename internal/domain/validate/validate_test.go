package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/validate"
)

func validProduct() *entity.Product {
	return &entity.Product{
		Name:     "Martillo",
		Category: "Herramientas",
		Quantity: 10,
		MinStock: 2,
		Price:    decimal.NewFromInt(15),
	}
}

func TestProduct_Valido(t *testing.T) {
	assert.Nil(t, validate.Product(validProduct()))
}

// La validación falla rápido: con nombre vacío Y precio inválido debe
// reportarse solo la primera regla (name), no la del precio.
func TestProduct_FallaRapidoEnLaPrimeraRegla(t *testing.T) {
	p := validProduct()
	p.Name = ""
	p.Price = decimal.NewFromInt(-10)

	err := validate.Product(p)
	require.NotNil(t, err)
	assert.Equal(t, "name", err.Field, "debe reportar la primera regla violada")
}

func TestProduct_PrecioDebeSerPositivo(t *testing.T) {
	p := validProduct()
	p.Price = decimal.Zero
	err := validate.Product(p)
	require.NotNil(t, err)
	assert.Equal(t, "price", err.Field)
}

func TestInvoice_Reglas(t *testing.T) {
	base := func() *entity.Invoice {
		return &entity.Invoice{
			Kind:             entity.InvoiceKindSale,
			CounterpartyName: "ACME Ltda",
			Subtotal:         decimal.NewFromInt(100),
			Tax:              decimal.NewFromInt(19),
			Status:           entity.InvoiceStatusPending,
		}
	}

	t.Run("válida", func(t *testing.T) {
		assert.Nil(t, validate.Invoice(base()))
	})
	t.Run("contraparte requerida", func(t *testing.T) {
		inv := base()
		inv.CounterpartyName = ""
		err := validate.Invoice(inv)
		require.NotNil(t, err)
		assert.Equal(t, "counterparty_name", err.Field)
	})
	t.Run("subtotal negativo", func(t *testing.T) {
		inv := base()
		inv.Subtotal = decimal.NewFromInt(-1)
		err := validate.Invoice(inv)
		require.NotNil(t, err)
		assert.Equal(t, "subtotal", err.Field)
	})
	t.Run("estado desconocido", func(t *testing.T) {
		inv := base()
		inv.Status = "archived"
		err := validate.Invoice(inv)
		require.NotNil(t, err)
		assert.Equal(t, "status", err.Field)
	})
}

func TestInvoiceItem_CantidadYPrecioPositivos(t *testing.T) {
	item := &entity.InvoiceItem{
		ProductName: "Martillo",
		Quantity:    decimal.Zero,
		Price:       decimal.NewFromInt(5),
	}
	err := validate.InvoiceItem(item)
	require.NotNil(t, err)
	assert.Equal(t, "quantity", err.Field)
}

func TestLedgerEntry_Reglas(t *testing.T) {
	base := func() *entity.LedgerEntry {
		return &entity.LedgerEntry{
			EntityType:      entity.LedgerEntityCustomer,
			EntityName:      "ACME Ltda",
			TransactionType: entity.LedgerTypeDebit,
			Amount:          decimal.NewFromInt(100),
		}
	}

	t.Run("válido", func(t *testing.T) {
		assert.Nil(t, validate.LedgerEntry(base()))
	})
	t.Run("monto cero", func(t *testing.T) {
		e := base()
		e.Amount = decimal.Zero
		err := validate.LedgerEntry(e)
		require.NotNil(t, err)
		assert.Equal(t, "amount", err.Field)
	})
	t.Run("tipo de movimiento desconocido", func(t *testing.T) {
		e := base()
		e.TransactionType = "transfer"
		err := validate.LedgerEntry(e)
		require.NotNil(t, err)
		assert.Equal(t, "transaction_type", err.Field)
	})
}

func TestParty_EmailOpcionalConFormato(t *testing.T) {
	base := func() *entity.Party {
		return &entity.Party{
			Kind: entity.PartyKindCustomer,
			Name: "ACME Ltda",
		}
	}

	t.Run("sin email es válido", func(t *testing.T) {
		assert.Nil(t, validate.Party(base()))
	})
	t.Run("email válido", func(t *testing.T) {
		p := base()
		p.Email = "contacto@acme.com.co"
		assert.Nil(t, validate.Party(p))
	})
	t.Run("email malformado", func(t *testing.T) {
		p := base()
		p.Email = "no-es-un-email"
		err := validate.Party(p)
		require.NotNil(t, err)
		assert.Equal(t, "email", err.Field)
	})
}
