// Package pdf genera el listado de pedidos exportado en PDF.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: 주문 목록  │  Exportado por + fecha                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | 담당자 | 판매처 | 납품처 | 제품 | 수량 | 총액 | 납품 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cantidad de pedidos + suma de importes             │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/domain/catalog"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const defaultFamily = "helvetica"

// ── Encoder ───────────────────────────────────────────────────────────────────

var _ transfer.Encoder = (*OrderReportEncoder)(nil)

// OrderReportEncoder implementa transfer.Encoder usando Maroto v2.
// Con FontPath vacío se usa la fuente base, que no tiene glifos coreanos.
type OrderReportEncoder struct {
	FontPath string
}

// NewOrderReportEncoder construye el encoder.
func NewOrderReportEncoder(fontPath string) *OrderReportEncoder {
	return &OrderReportEncoder{FontPath: fontPath}
}

func (e *OrderReportEncoder) ContentType() string { return "application/pdf" }
func (e *OrderReportEncoder) Extension() string   { return "pdf" }

// Encode genera el PDF y devuelve sus bytes.
func (e *OrderReportEncoder) Encode(doc transfer.Document) ([]byte, error) {
	family := defaultFamily
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("주문 목록", true).
		WithAuthor(doc.ExportedBy, true)

	if e.FontPath != "" {
		family = "korean"
		fonts, err := repository.New().
			AddUTF8Font(family, fontstyle.Normal, e.FontPath).
			AddUTF8Font(family, fontstyle.Bold, e.FontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", e.FontPath, err)
		}
		builder = builder.WithCustomFonts(fonts)
	}
	builder = builder.WithDefaultFont(&props.Font{Family: family, Size: 8})

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(doc.Orders) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Orders))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc transfer.Document) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("주문 목록", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(doc.ExportedBy, "-"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(doc.ExportedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: anchos sobre 12 columnas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("주문번호", 2, align.Left),
		h("담당자", 1, align.Left),
		h("판매처", 2, align.Left),
		h("납품처", 2, align.Left),
		h("제품", 2, align.Left),
		h("수량", 1, align.Right),
		h("총액", 1, align.Right),
		h("납품", 1, align.Center),
	)
}

func tableRows(list []entity.Order) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(list))
	for _, o := range list {
		rows = append(rows, row.New(7).Add(
			cell(o.ID, 2, align.Left),
			cell(o.Manager, 1, align.Left),
			cell(o.Seller, 2, align.Left),
			cell(catalog.DestinationLabel(o.Destination), 2, align.Left),
			cell(o.Category+" / "+o.Product, 2, align.Left),
			cell(strconv.FormatInt(o.Quantity, 10), 1, align.Right),
			cell(o.TotalAmount, 1, align.Right),
			cell(o.DeliveryDate+" "+o.DeliveryTime, 1, align.Center),
		))
	}
	return rows
}

func totalsRow(list []entity.Order) core.Row {
	sum := decimal.Zero
	for _, o := range list {
		sum = sum.Add(rules.Amount(o.Quantity, o.UnitPrice))
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New(fmt.Sprintf("%d건", len(list)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(rules.FormatAmount(sum), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
