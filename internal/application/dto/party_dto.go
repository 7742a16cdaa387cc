package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
)

// CreatePartyRequest entrada para crear un cliente o proveedor.
type CreatePartyRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"` // saldo inicial declarado
}

// UpdatePartyRequest entrada para actualizar (campos opcionales).
type UpdatePartyRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string          `json:"email" validate:"omitempty,email"`
	Phone   *string          `json:"phone"`
	Address *string          `json:"address"`
	Balance *decimal.Decimal `json:"balance"`
}

// PartyResponse salida de un cliente o proveedor.
type PartyResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PartyDetailResponse contraparte más los totales de su libro
// (débitos, créditos, saldo neto derivado).
type PartyDetailResponse struct {
	PartyResponse
	Ledger ledger.Totals `json:"ledger"`
}

// PartyListResponse listado filtrado de contrapartes.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
}
