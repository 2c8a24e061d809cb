// Package search coincidencia de texto sin distinguir mayúsculas, compartida por los filtros
// del catálogo, el inventario, las cotizaciones y las reservas.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold normaliza s para comparación sin mayúsculas (case folding Unicode).
// cases.Caser no es seguro entre goroutines, por eso se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold igualdad sin distinguir mayúsculas.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Matcher busca una subcadena fija en varios campos. Una consulta vacía coincide con todo.
type Matcher struct {
	needle string
}

// NewMatcher prepara la consulta una sola vez.
func NewMatcher(query string) Matcher {
	return Matcher{needle: Fold(query)}
}

// Empty indica si la consulta es vacía.
func (m Matcher) Empty() bool {
	return m.needle == ""
}

// Match indica si s contiene la consulta.
func (m Matcher) Match(s string) bool {
	if m.needle == "" {
		return true
	}
	return strings.Contains(Fold(s), m.needle)
}

// Any indica si alguno de los valores contiene la consulta.
func (m Matcher) Any(values ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(Fold(v), m.needle) {
			return true
		}
	}
	return false
}
