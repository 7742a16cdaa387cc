// Package analytics contiene el caso de uso del resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/internal/domain/stock"
)

// DashboardUseCase genera los KPIs del negocio para el dueño autenticado.
//
// Todos los valores son derivados por agregación completa sobre el snapshot
// del dueño; nada se materializa ni se actualiza incrementalmente.
type DashboardUseCase struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
	partyRepo   repository.PartyRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	ledgerRepo repository.LedgerRepository,
	partyRepo repository.PartyRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
		partyRepo:   partyRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO para el dueño indicado.
//
// Las cinco consultas van en paralelo:
//  1. facturas de venta      → Sales (total / hoy / pendiente)
//  2. facturas de compra     → Purchases
//  3. productos              → Stock (conteo por estado) + ProductCount
//  4. asientos del libro     → Ledger (débitos / créditos / neto)
//  5. contrapartes           → CustomerCount + VendorCount
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ownerID string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	type invoicesResult struct {
		list []entity.Invoice
		err  error
	}
	type productsResult struct {
		list []entity.Product
		err  error
	}
	type entriesResult struct {
		list []entity.LedgerEntry
		err  error
	}
	type partiesResult struct {
		customers, vendors []entity.Party
		err                error
	}

	salesCh := make(chan invoicesResult, 1)
	purchasesCh := make(chan invoicesResult, 1)
	productsCh := make(chan productsResult, 1)
	entriesCh := make(chan entriesResult, 1)
	partiesCh := make(chan partiesResult, 1)

	go func() {
		list, err := uc.invoiceRepo.ListByOwnerAndKind(ctx, ownerID, entity.InvoiceKindSale)
		salesCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.invoiceRepo.ListByOwnerAndKind(ctx, ownerID, entity.InvoiceKindPurchase)
		purchasesCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.productRepo.ListByOwner(ctx, ownerID)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.ledgerRepo.ListByOwner(ctx, ownerID)
		entriesCh <- entriesResult{list, err}
	}()
	go func() {
		customers, err := uc.partyRepo.ListByOwnerAndKind(ctx, ownerID, entity.PartyKindCustomer)
		if err != nil {
			partiesCh <- partiesResult{err: err}
			return
		}
		vendors, err := uc.partyRepo.ListByOwnerAndKind(ctx, ownerID, entity.PartyKindVendor)
		partiesCh <- partiesResult{customers: customers, vendors: vendors, err: err}
	}()

	sales := <-salesCh
	purchases := <-purchasesCh
	products := <-productsCh
	entries := <-entriesCh
	parties := <-partiesCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", purchases.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: libro: %w", entries.err)
	}
	if parties.err != nil {
		return nil, fmt.Errorf("dashboard: contrapartes: %w", parties.err)
	}

	pairs := make([][2]int64, 0, len(products.list))
	for _, p := range products.list {
		pairs = append(pairs, [2]int64{p.Quantity, p.MinStock})
	}

	return &dto.DashboardSummaryDTO{
		Sales:         ledger.InvoiceStats(sales.list, now),
		Purchases:     ledger.InvoiceStats(purchases.list, now),
		Stock:         stock.Count(pairs),
		Ledger:        ledger.Aggregate(entries.list),
		ProductCount:  len(products.list),
		CustomerCount: len(parties.customers),
		VendorCount:   len(parties.vendors),
	}, nil
}
