package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura: venta o compra. Una sola entidad sirve ambos flujos.
const (
	InvoiceKindSale     = "sale"
	InvoiceKindPurchase = "purchase"
)

// Estados de pago de una factura.
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
)

// Invoice representa la cabecera de una factura de venta o de compra.
// Total = Subtotal + Tax; siempre recalculado en el servidor, nunca se
// acepta del cliente (ver domain/compute).
type Invoice struct {
	ID               string
	OwnerID          string
	Kind             string // sale | purchase
	CounterpartyName string // cliente (venta) o proveedor (compra)
	Date             time.Time
	Subtotal         decimal.Decimal // >= 0
	Tax              decimal.Decimal // >= 0
	Total            decimal.Decimal // Subtotal + Tax
	Status           string          // paid | pending
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InvoiceItem representa una línea de factura. ProductID puede ser vacío si
// el producto se digitó manualmente. Total = Quantity × Price, siempre
// recalculado.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string // opcional
	ProductName string
	Quantity    decimal.Decimal // > 0
	Price       decimal.Decimal // > 0
	Total       decimal.Decimal // Quantity × Price
	CreatedAt   time.Time
}
