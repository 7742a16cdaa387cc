// Package pdf implementa la representación gráfica de una factura de venta
// o de compra usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de factura + N° │ Fecha + Estado de pago      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: cliente (venta) o proveedor (compra)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/gestion-pro/internal/application/billing"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	items []entity.InvoiceItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(kindLabel(invoice.Kind), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(counterpartyRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func kindLabel(kind string) string {
	if kind == entity.InvoiceKindPurchase {
		return "Factura de Compra"
	}
	return "Factura de Venta"
}

func statusLabel(status string) string {
	if status == entity.InvoiceStatusPaid {
		return "PAGADA"
	}
	return "PENDIENTE"
}

// headerRow: tipo de factura + ID (izq), fecha + estado (der).
func headerRow(invoice *entity.Invoice) core.Row {
	fecha := invoice.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(kindLabel(invoice.Kind), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+invoice.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Top: 2, Align: align.Right,
			}),
			text.New(statusLabel(invoice.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}

// counterpartyRow: cliente (venta) o proveedor (compra).
func counterpartyRow(invoice *entity.Invoice) core.Row {
	label := "Cliente"
	if invoice.Kind == entity.InvoiceKindPurchase {
		label = "Proveedor"
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
			text.New(invoice.CounterpartyName, props.Text{Size: 10, Top: 5}),
		),
	)
}

func tableHeaderRow() core.Row {
	st := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5}
	bg := &props.Cell{BackgroundColor: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", st)).WithStyle(bg),
		col.New(6).Add(text.New("Producto", st)).WithStyle(bg),
		col.New(2).Add(text.New("P. Unit", st)).WithStyle(bg),
		col.New(2).Add(text.New("Total", st)).WithStyle(bg),
	)
}

func tableDetailRows(items []entity.InvoiceItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New(it.Total.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(invoice *entity.Invoice) []core.Row {
	label := props.Text{Size: 9, Top: 1, Align: align.Right}
	value := props.Text{Size: 9, Top: 1, Align: align.Right}
	return []core.Row{
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("Subtotal", label)),
			col.New(2).Add(text.New(invoice.Subtotal.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("Impuesto", label)),
			col.New(2).Add(text.New(invoice.Tax.StringFixed(2), value)),
		),
		row.New(8).Add(
			col.New(8),
			col.New(2).Add(text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1.5, Align: align.Right, Color: colorPrimary,
			})),
			col.New(2).Add(text.New(invoice.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1.5, Align: align.Right, Color: colorPrimary,
			})),
		),
	}
}
