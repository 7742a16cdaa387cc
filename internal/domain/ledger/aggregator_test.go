package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
)

func entry(txType string, amount float64) entity.LedgerEntry {
	return entity.LedgerEntry{
		TransactionType: txType,
		Amount:          decimal.NewFromFloat(amount),
	}
}

func TestAggregate_EscenarioBasico(t *testing.T) {
	// [{debit,100},{credit,150}] → {debits:100, credits:150, net:50}
	got := ledger.Aggregate([]entity.LedgerEntry{
		entry(entity.LedgerTypeDebit, 100),
		entry(entity.LedgerTypeCredit, 150),
	})
	assert.True(t, got.TotalDebits.Equal(decimal.NewFromInt(100)), "debits fue %s", got.TotalDebits)
	assert.True(t, got.TotalCredits.Equal(decimal.NewFromInt(150)), "credits fue %s", got.TotalCredits)
	assert.True(t, got.NetBalance.Equal(decimal.NewFromInt(50)), "net fue %s", got.NetBalance)
}

func TestAggregate_Vacio(t *testing.T) {
	got := ledger.Aggregate(nil)
	assert.True(t, got.TotalDebits.IsZero())
	assert.True(t, got.TotalCredits.IsZero())
	assert.True(t, got.NetBalance.IsZero())
}

// Permutar la lista de asientos no cambia los totales (la agregación es
// conmutativa y asociativa).
func TestAggregate_OrdenIndependiente(t *testing.T) {
	entries := []entity.LedgerEntry{
		entry(entity.LedgerTypeDebit, 10.50),
		entry(entity.LedgerTypeCredit, 99.99),
		entry(entity.LedgerTypeDebit, 3),
		entry(entity.LedgerTypeCredit, 0.01),
	}
	reversed := make([]entity.LedgerEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}

	a := ledger.Aggregate(entries)
	b := ledger.Aggregate(reversed)
	assert.True(t, a.TotalDebits.Equal(b.TotalDebits))
	assert.True(t, a.TotalCredits.Equal(b.TotalCredits))
	assert.True(t, a.NetBalance.Equal(b.NetBalance))
}

func TestInvoiceStats_AcumulaTotalHoyYPendiente(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	invoices := []entity.Invoice{
		{Total: decimal.NewFromInt(100), Date: now, Status: entity.InvoiceStatusPaid},
		{Total: decimal.NewFromInt(200), Date: yesterday, Status: entity.InvoiceStatusPending},
		{Total: decimal.NewFromInt(50), Date: now, Status: entity.InvoiceStatusPending},
	}

	got := ledger.InvoiceStats(invoices, now)
	assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(350)), "total fue %s", got.TotalValue)
	assert.True(t, got.TodayValue.Equal(decimal.NewFromInt(150)), "hoy fue %s", got.TodayValue)
	assert.True(t, got.PendingAmount.Equal(decimal.NewFromInt(250)), "pendiente fue %s", got.PendingAmount)
	assert.Equal(t, 1, got.PaidCount)
	assert.Equal(t, 2, got.PendingCount)
}

func TestInvoiceStats_Vacio(t *testing.T) {
	got := ledger.InvoiceStats(nil, time.Now())
	assert.True(t, got.TotalValue.IsZero())
	assert.True(t, got.TodayValue.IsZero())
	assert.True(t, got.PendingAmount.IsZero())
}
