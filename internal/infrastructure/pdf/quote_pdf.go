// Package pdf genera el PDF de una cotización con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  COTIZACIÓN + folio                                          │
//	│  Empresa / Tel / Email        │  Fecha / Válida hasta        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, email, teléfono, proyecto, dirección       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTOS: Producto | Área (m²) | Precio/m² | Subtotal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA (16%) / Descuento / TOTAL           │
//	│  NOTAS                                                       │
//	│  Pie de página                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/pkg/money"
)

var _ quotes.QuotePDFGenerator = (*QuotePDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 33, Blue: 33}
	colorGray    = &props.Color{Red: 128, Green: 128, Blue: 128}
	colorLine    = &props.Color{Red: 200, Green: 200, Blue: 200}
	colorGreen   = &props.Color{Red: 34, Green: 197, Blue: 94}
)

// dateLayout fecha corta es-MX (d/m/aaaa).
const dateLayout = "2/1/2006"

// Company datos del emisor impresos en el encabezado.
type Company struct {
	Name  string
	Phone string
	Email string
}

// DefaultCompany datos de la marmolería.
var DefaultCompany = Company{Name: "NewTop Marmolería", Phone: "+52 555 000 0000", Email: "info@newtop.com"}

// ── Generator ─────────────────────────────────────────────────────────────────

// QuotePDFGenerator implementa quotes.QuotePDFGenerator usando Maroto v2.
type QuotePDFGenerator struct {
	company Company
}

// NewQuotePDFGenerator construye el generador.
func NewQuotePDFGenerator(company Company) *QuotePDFGenerator {
	return &QuotePDFGenerator{company: company}
}

// GenerateQuotePDF genera el PDF y devuelve sus bytes. Los importes se redondean a 2 decimales.
func (g *QuotePDFGenerator) GenerateQuotePDF(_ context.Context, q entity.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cotización "+q.Number, true).
		WithAuthor(g.company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(q)...)
	m.AddRows(companyRow(g.company, q))
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(clientRows(q)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.3}))

	m.AddRows(sectionRow("PRODUCTOS"))
	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(itemRows(q.Items)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(totalsRows(q)...)

	if q.Notes != "" {
		m.AddRows(row.New(6))
		m.AddRows(sectionRow("NOTAS:"))
		m.AddRows(text.NewRow(10, q.Notes, props.Text{Size: 9}))
	}

	m.AddRows(row.New(10))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRows(q entity.Quote) []core.Row {
	return []core.Row{
		text.NewRow(10, "COTIZACIÓN", props.Text{
			Style: fontstyle.Bold, Size: 20, Align: align.Center, Color: colorPrimary,
		}),
		text.NewRow(8, q.Number, props.Text{Size: 12, Align: align.Center}),
	}
}

func companyRow(c Company, q entity.Quote) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
			text.New("Tel: "+c.Phone, props.Text{Size: 9, Top: 7, Color: colorGray}),
			text.New(c.Email, props.Text{Size: 9, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Fecha: "+formatDate(q.CreatedDate), props.Text{Size: 9, Align: align.Right, Top: 7}),
			text.New("Válida hasta: "+formatDate(q.ValidUntil), props.Text{Size: 9, Align: align.Right, Top: 12}),
		),
	)
}

func clientRows(q entity.Quote) []core.Row {
	rows := []core.Row{sectionRow("CLIENTE")}
	fields := [][2]string{
		{"Nombre", q.ClientName},
		{"Email", q.ClientEmail},
		{"Teléfono", nonEmpty(q.ClientPhone, "—")},
		{"Proyecto", q.ProjectType},
	}
	if q.ClientAddress != "" {
		fields = append(fields, [2]string{"Dirección", q.ClientAddress})
	}
	for _, f := range fields {
		rows = append(rows, text.NewRow(6, f[0]+": "+f[1], props.Text{Size: 10}))
	}
	return rows
}

func sectionRow(title string) core.Row {
	return text.NewRow(8, title, props.Text{Style: fontstyle.Bold, Size: 11, Top: 1, Color: colorPrimary})
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Producto", 6, align.Left),
		h("Área (m²)", 2, align.Right),
		h("Precio/m²", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func itemRows(items []entity.QuoteItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 9, Top: 1})),
			col.New(2).Add(text.New(it.Area.StringFixed(2), props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(money.Format(it.PricePerUnit), props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(money.Format(it.Subtotal()), props.Text{Size: 9, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func totalsRows(q entity.Quote) []core.Row {
	totalLine := func(label, value string, style fontstyle.Type, size float64, color *props.Color) core.Row {
		return row.New(size - 3).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{Style: style, Size: size, Color: color})),
			col.New(2).Add(text.New(value, props.Text{Style: style, Size: size, Align: align.Right, Color: color})),
		)
	}
	rows := []core.Row{
		totalLine("Subtotal:", money.Format(q.Subtotal), fontstyle.Normal, 10, nil),
		totalLine("IVA (16%):", money.Format(q.Tax), fontstyle.Normal, 10, nil),
	}
	if q.Discount.IsPositive() {
		rows = append(rows, totalLine("Descuento:", money.Format(q.Discount.Neg()), fontstyle.Normal, 10, colorGreen))
	}
	return append(rows, totalLine("TOTAL:", money.Format(q.Total), fontstyle.Bold, 12, colorPrimary))
}

func footerRows() []core.Row {
	style := props.Text{Size: 8, Align: align.Center, Color: colorGray}
	return []core.Row{
		text.NewRow(4, "Esta cotización es válida hasta la fecha indicada. Los precios incluyen IVA.", style),
		text.NewRow(4, "Para más información, contáctenos a través de nuestros canales de comunicación.", style),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
