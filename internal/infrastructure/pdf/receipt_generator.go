// Package pdf genera el comprobante de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de Venta  │  N° Venta + Fecha           │
//	│  CLIENTE + VENDEDOR                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE LA VENTA                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/dparada2020225/inventario-server/internal/application/sales"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

var _ sales.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y N° de venta + fecha (der).
func headerRow(sale *entity.Sale) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Comprobante de Venta", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Venta N° "+sale.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente y vendedor.
func partiesRow(sale *entity.Sale) core.Row {
	vendedor := sale.Username
	if vendedor == "" {
		vendedor = sale.UserID
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Cliente: "+sale.Customer, props.Text{Size: 9, Top: 2}),
		),
		col.New(6).Add(
			text.New("Vendedor: "+vendedor, props.Text{Size: 9, Top: 2, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	hRight := h
	hRight.Align = align.Right
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", h)),
		col.New(5).Add(text.New("Producto", h)),
		col.New(2).Add(text.New("P. Unit", hRight)),
		col.New(3).Add(text.New("Total", hRight)),
	)
}

func tableItemRows(items []entity.SaleItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	body := props.Text{Size: 9, Top: 1}
	bodyRight := body
	bodyRight.Align = align.Right
	for _, it := range items {
		name := it.ProductName
		if name == "" {
			name = it.ProductID
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(strconv.Itoa(it.Quantity), body)),
			col.New(5).Add(text.New(name, body)),
			col.New(2).Add(text.New(it.Price.StringFixed(2), bodyRight)),
			col.New(3).Add(text.New(it.Total.StringFixed(2), bodyRight)),
		))
	}
	return rows
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
		col.New(3).Add(
			text.New(sale.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}
