package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de contraparte comercial.
const (
	PartyKindCustomer = "customer"
	PartyKindVendor   = "vendor"
)

// Party representa un cliente o proveedor de la empresa.
// Balance es el saldo inicial declarado; el saldo vigente se deriva de los
// asientos del libro (ver domain/ledger).
type Party struct {
	ID        string
	OwnerID   string
	Kind      string // customer | vendor
	Name      string
	Email     string // opcional
	Phone     string // opcional
	Address   string // opcional
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
