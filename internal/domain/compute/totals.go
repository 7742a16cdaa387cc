// Package compute contiene los cálculos de valores derivados (servicios de
// dominio puros): totales de línea y de factura. Todo el dinero se maneja
// con shopspring/decimal.
package compute

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineTotal calcula el total de una línea: cantidad × precio.
// Puro e idempotente; el total nunca se acepta del cliente.
func LineTotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}

// InvoiceTotal calcula el total de una factura: subtotal + impuesto.
func InvoiceTotal(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// SumLineTotals suma los totales de un conjunto de líneas (subtotal de la
// factura). La suma es conmutativa: el orden de las líneas no afecta.
func SumLineTotals(totals []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum
}

// ParseAmount convierte texto libre a decimal con coerción permisiva:
// entrada vacía o no numérica devuelve 0 en vez de error.
// Solo se usa en bordes de ingesta de texto libre (import CSV, seeds);
// el API JSON rechaza numéricos malformados en el decode.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
