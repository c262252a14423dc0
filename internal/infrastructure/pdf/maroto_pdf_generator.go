// Package pdf genera el comprobante de venta en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: N° de comprobante + Fecha                   │
//	│  CLIENTE: Nombre + método de pago                    │
//	│  ───────────────────────────────────────────────     │
//	│  TABLA: Cant | Producto | P.Unit | Total             │
//	│  ───────────────────────────────────────────────     │
//	│  TOTAL A PAGAR                                       │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

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

	"github.com/tu-usuario/inventario-ventas/internal/application/sales"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(doc *sales.SaleDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(doc.Lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: N° de comprobante (izq) y fecha (der).
func headerRow(doc *sales.SaleDocument) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+doc.CreatedAt, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente y método de pago.
func customerRow(doc *sales.SaleDocument) core.Row {
	customer := doc.CustomerName
	if customer == "" {
		customer = "Consumidor final"
	}
	payment := doc.PaymentMethod
	if payment == "" {
		payment = "-"
	}
	return row.New(8).Add(
		col.New(7).Add(
			text.New("Cliente: "+customer, props.Text{Size: 9, Top: 1}),
		),
		col.New(5).Add(
			text.New("Pago: "+payment, props.Text{Size: 9, Align: align.Right, Top: 1}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(7).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", headerRight)),
		col.New(2).Add(text.New("Total", headerRight)),
	)
}

func tableLineRows(lines []sales.SaleDocumentLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Top: 1})),
			col.New(7).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(l.UnitPrice, props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New(l.TotalPrice, props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func totalRow(doc *sales.SaleDocument) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL A PAGAR: "+doc.TotalAmount, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
