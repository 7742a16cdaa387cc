package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
)

// InvoiceItemRequest línea de factura en la petición de creación.
// El total de la línea NO se acepta del cliente: siempre se recalcula.
type InvoiceItemRequest struct {
	ProductID   string          `json:"product_id"` // opcional
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateInvoiceRequest entrada para crear una factura (venta o compra según
// la ruta). Subtotal y Total se recalculan en el servidor a partir de las
// líneas; Tax sí se acepta (el impuesto depende del régimen del usuario).
type CreateInvoiceRequest struct {
	CounterpartyName string               `json:"counterparty_name" validate:"required"`
	Date             time.Time            `json:"date"`
	Tax              decimal.Decimal      `json:"tax"`
	Status           string               `json:"status"` // paid | pending; vacío = pending
	Items            []InvoiceItemRequest `json:"items" validate:"min=1"`
}

// UpdateInvoiceRequest entrada para actualizar la cabecera (el estado de
// pago y la contraparte; las líneas no se editan, se reemplaza la factura).
type UpdateInvoiceRequest struct {
	CounterpartyName *string    `json:"counterparty_name"`
	Date             *time.Time `json:"date"`
	Status           *string    `json:"status"`
}

// InvoiceItemResponse línea de factura en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse salida de una factura con sus líneas.
// Toda mutación devuelve la factura resultante para que el cliente
// reconcilie estado sin refetch completo.
type InvoiceResponse struct {
	ID               string                `json:"id"`
	Kind             string                `json:"kind"`
	CounterpartyName string                `json:"counterparty_name"`
	Date             time.Time             `json:"date"`
	Subtotal         decimal.Decimal       `json:"subtotal"`
	Tax              decimal.Decimal       `json:"tax"`
	Total            decimal.Decimal       `json:"total"`
	Status           string                `json:"status"`
	Items            []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// InvoiceListResponse listado filtrado de facturas más sus estadísticas
// agregadas (valor total, valor de hoy, monto pendiente).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Stats ledger.Stats      `json:"stats"`
}
