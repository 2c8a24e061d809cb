package catalog

import (
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/search"
)

// CategoryAll categoría centinela que no filtra.
const CategoryAll = "All"

// Filter devuelve los productos que cumplen categoría y búsqueda, en el orden original.
// La categoría se compara por igualdad sin mayúsculas contra Type; la búsqueda es subcadena
// sobre nombre, descripción, aplicación, acabado y características.
func Filter(products []entity.Product, query, category string) []entity.Product {
	m := search.NewMatcher(query)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p.Type, category) && Matches(p, m) {
			out = append(out, p)
		}
	}
	return out
}

// MatchesCategory igualdad sin mayúsculas; CategoryAll acepta todo.
func MatchesCategory(productType, category string) bool {
	return category == CategoryAll || search.EqualFold(productType, category)
}

// Matches indica si algún campo de búsqueda del producto contiene la consulta.
func Matches(p entity.Product, m search.Matcher) bool {
	return m.Any(SearchFields(p)...)
}

// SearchFields campos de texto en los que busca el catálogo.
func SearchFields(p entity.Product) []string {
	fields := make([]string, 0, 4+len(p.Features))
	fields = append(fields, p.Name, p.Description, p.Application, p.Finish)
	return append(fields, p.Features...)
}

// Categories tipos distintos en orden de primera aparición.
func Categories(products []entity.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Type]; ok {
			continue
		}
		seen[p.Type] = struct{}{}
		out = append(out, p.Type)
	}
	return out
}
