// Package csvexport exporta cotizaciones a CSV compatible con Excel: BOM UTF-8 y todas las
// celdas entre comillas.
package csvexport

import (
	"bytes"
	"strings"
	"time"

	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/pkg/money"
)

var _ quotes.QuoteCSVEncoder = (*QuoteCSVEncoder)(nil)

const (
	bom        = "\ufeff"
	dateLayout = "2/1/2006"
)

// QuoteCSVEncoder preámbulo del cliente, tabla de líneas y bloque de totales.
type QuoteCSVEncoder struct{}

func NewQuoteCSVEncoder() *QuoteCSVEncoder { return &QuoteCSVEncoder{} }

// EncodeQuoteCSV filas separadas por "\n".
func (QuoteCSVEncoder) EncodeQuoteCSV(q entity.Quote) ([]byte, error) {
	rows := [][]string{
		{"Cotización:", q.Number},
		{"Cliente:", q.ClientName},
		{"Email:", q.ClientEmail},
		{"Teléfono:", q.ClientPhone},
		{"Proyecto:", q.ProjectType},
		{"Fecha:", formatDate(q.CreatedDate)},
		{"Válida hasta:", formatDate(q.ValidUntil)},
		{"", ""},
		{"Producto", "Área (m²)", "Precio/m²", "Subtotal"},
	}
	for _, it := range q.Items {
		rows = append(rows, []string{it.ProductName, it.Area.StringFixed(2), money.Fixed(it.PricePerUnit), money.Fixed(it.Subtotal())})
	}
	rows = append(rows,
		[]string{"", "", "", ""},
		[]string{"", "", "Subtotal:", money.Fixed(q.Subtotal)},
		[]string{"", "", "IVA (16%):", money.Fixed(q.Tax)},
	)
	if q.Discount.IsPositive() {
		rows = append(rows, []string{"", "", "Descuento:", "-" + money.Fixed(q.Discount)})
	}
	rows = append(rows, []string{"", "", "TOTAL:", money.Fixed(q.Total)})

	var buf bytes.Buffer
	buf.WriteString(bom)
	for i, r := range rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for j, cell := range r {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quote(cell))
		}
	}
	return buf.Bytes(), nil
}

// quote entre comillas dobles, duplicando las internas (RFC 4180).
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
