package inventory

import (
	"github.com/newtop/marmoleria-api/internal/domain/catalog"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

// ViewState estado de la tabla entre peticiones: búsqueda, filtro, orden y página.
// Cambiar búsqueda o filtro vuelve a la página 1.
type ViewState struct {
	q Query
}

// NewViewState estado inicial: sin búsqueda, todos los tipos, sin orden, página 1.
func NewViewState() *ViewState {
	return &ViewState{q: Query{Type: catalog.CategoryAll, Page: 1}}
}

func (v *ViewState) SetSearch(s string) {
	v.q.Search = s
	v.q.Page = 1
}

func (v *ViewState) SetType(t string) {
	if t == "" {
		t = catalog.CategoryAll
	}
	v.q.Type = t
	v.q.Page = 1
}

// ToggleSort alterna la columna de orden.
func (v *ViewState) ToggleSort(key SortKey) {
	v.q.Sort = v.q.Sort.Toggle(key)
}

func (v *ViewState) SetPage(p int) {
	v.q.Page = p
}

// Query copia de la consulta actual.
func (v *ViewState) Query() Query {
	return v.q
}

// Apply ejecuta la vista y guarda la página efectiva tras el acotado.
func (v *ViewState) Apply(items []entity.InventoryItem) Page {
	res := View(items, v.q)
	v.q.Page = res.Page
	return res
}
