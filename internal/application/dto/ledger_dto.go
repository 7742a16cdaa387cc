package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
)

// CreateLedgerEntryRequest entrada para registrar un asiento.
type CreateLedgerEntryRequest struct {
	EntityType      string          `json:"entity_type" validate:"required"` // customer | vendor
	PartyID         string          `json:"party_id"`                        // opcional
	EntityName      string          `json:"entity_name" validate:"required"`
	TransactionType string          `json:"transaction_type" validate:"required"` // debit | credit
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	Date            time.Time       `json:"date"`
}

// LedgerEntryResponse salida de un asiento.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	EntityType      string          `json:"entity_type"`
	PartyID         string          `json:"party_id,omitempty"`
	EntityName      string          `json:"entity_name"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Reference       string          `json:"reference"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LedgerListResponse listado filtrado de asientos más los totales agregados
// del subconjunto (recalculados completos en cada consulta).
type LedgerListResponse struct {
	Items  []LedgerEntryResponse `json:"items"`
	Totals ledger.Totals         `json:"totals"`
}

// StatementResponse estado de cuenta de una contraparte: sus asientos y
// los totales acumulados.
type StatementResponse struct {
	Party   PartyResponse         `json:"party"`
	Entries []LedgerEntryResponse `json:"entries"`
	Totals  ledger.Totals         `json:"totals"`
}
