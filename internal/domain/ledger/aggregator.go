// Package ledger agrega asientos de débito/crédito y estadísticas de
// facturas (servicios de dominio puros, recalculados completos en cada
// consulta; sin actualización incremental).
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// Totals resultado de agregar un conjunto de asientos.
// NetBalance = TotalCredits − TotalDebits.
type Totals struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	NetBalance   decimal.Decimal `json:"net_balance"`
}

// Aggregate reduce los asientos a sus totales. La suma es conmutativa y
// asociativa: permutar la lista no cambia el resultado.
func Aggregate(entries []entity.LedgerEntry) Totals {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		switch e.TransactionType {
		case entity.LedgerTypeDebit:
			debits = debits.Add(e.Amount)
		case entity.LedgerTypeCredit:
			credits = credits.Add(e.Amount)
		}
	}
	return Totals{
		TotalDebits:  debits,
		TotalCredits: credits,
		NetBalance:   credits.Sub(debits),
	}
}

// Stats estadísticas de un conjunto de facturas (ventas o compras).
type Stats struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	TodayValue    decimal.Decimal `json:"today_value"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaidCount     int             `json:"paid_count"`
	PendingCount  int             `json:"pending_count"`
}

// InvoiceStats recorre las facturas y acumula valor total, valor del día
// (fecha == hoy respecto a now) y monto pendiente de pago.
func InvoiceStats(invoices []entity.Invoice, now time.Time) Stats {
	s := Stats{
		TotalValue:    decimal.Zero,
		TodayValue:    decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	y, m, d := now.Date()
	for _, inv := range invoices {
		s.TotalValue = s.TotalValue.Add(inv.Total)
		iy, im, id := inv.Date.Date()
		if iy == y && im == m && id == d {
			s.TodayValue = s.TodayValue.Add(inv.Total)
		}
		if inv.Status == entity.InvoiceStatusPending {
			s.PendingAmount = s.PendingAmount.Add(inv.Total)
			s.PendingCount++
		} else {
			s.PaidCount++
		}
	}
	return s
}
