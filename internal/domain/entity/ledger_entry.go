package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de contraparte de un asiento.
const (
	LedgerEntityCustomer = "customer"
	LedgerEntityVendor   = "vendor"
)

// Tipo de movimiento de un asiento.
const (
	LedgerTypeDebit  = "debit"
	LedgerTypeCredit = "credit"
)

// LedgerEntry representa un asiento (débito o crédito) contra un cliente o
// proveedor. PartyID es opcional: el asiento puede registrarse con solo el
// nombre de la contraparte.
type LedgerEntry struct {
	ID              string
	OwnerID         string
	EntityType      string // customer | vendor
	PartyID         string // opcional, referencia a Party
	EntityName      string
	TransactionType string          // debit | credit
	Amount          decimal.Decimal // > 0
	Description     string
	Reference       string
	Date            time.Time
	CreatedAt       time.Time
}
