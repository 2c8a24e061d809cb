// Package money formato de importes para documentos exportados (es-MX).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var locale = language.MustParse("es-MX")

// Format importe con símbolo, separador de miles y 2 decimales: $1,292.00.
// message.Printer no es seguro entre goroutines; se crea uno por llamada.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	sign := ""
	if f < 0 {
		sign, f = "-", -f
	}
	return sign + "$" + message.NewPrinter(locale).Sprintf("%.2f", f)
}

// Fixed importe con 2 decimales y sin separadores (CSV).
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
