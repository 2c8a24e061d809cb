package inventory

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/newtop/marmoleria-api/internal/domain/catalog"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/search"
)

// PageSize filas por página de la tabla de inventario.
const PageSize = 10

// Umbrales de disponibilidad para el nivel de stock.
const (
	LowThreshold    = 20
	MediumThreshold = 50
)

// StatusTier nivel de stock según unidades disponibles.
type StatusTier string

const (
	TierLow    StatusTier = "low"
	TierMedium StatusTier = "medium"
	TierHigh   StatusTier = "high"
)

// TierFor clasifica unidades disponibles: <20 low, <50 medium, resto high.
func TierFor(available int) StatusTier {
	switch {
	case available < LowThreshold:
		return TierLow
	case available < MediumThreshold:
		return TierMedium
	default:
		return TierHigh
	}
}

// Weight peso numérico del nivel para ordenar (low=1, medium=2, high=3).
func (t StatusTier) Weight() int {
	switch t {
	case TierLow:
		return 1
	case TierMedium:
		return 2
	default:
		return 3
	}
}

// SortKey columna de ordenamiento.
type SortKey string

const (
	KeyID        SortKey = "id"
	KeyName      SortKey = "name"
	KeyType      SortKey = "type"
	KeyPrice     SortKey = "price"
	KeyStock     SortKey = "stock"
	KeyReserved  SortKey = "reserved"
	KeyAvailable SortKey = "available"
	KeyStatus    SortKey = "status"
	KeyLocation  SortKey = "location"
)

var sortKeys = []SortKey{KeyID, KeyName, KeyType, KeyPrice, KeyStock, KeyReserved, KeyAvailable, KeyStatus, KeyLocation}

// ParseSortKey valida el nombre de columna; "" significa sin ordenamiento.
func ParseSortKey(s string) (SortKey, bool) {
	if s == "" {
		return "", true
	}
	k := SortKey(strings.ToLower(s))
	return k, slices.Contains(sortKeys, k)
}

// Direction sentido del ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort ordenamiento de una sola columna. El valor cero deja el orden original.
type Sort struct {
	Key SortKey
	Dir Direction
}

// Toggle misma columna ascendente pasa a descendente; cualquier otro caso, ascendente.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key && s.Dir == Asc {
		return Sort{Key: key, Dir: Desc}
	}
	return Sort{Key: key, Dir: Asc}
}

// Row fila derivada de la tabla.
type Row struct {
	entity.InventoryItem
	Available int
	Status    StatusTier
}

// Query parámetros de una vista de la tabla.
type Query struct {
	Search string
	Type   string // catalog.CategoryAll para no filtrar
	Sort   Sort
	Page   int
}

// Page resultado paginado. Con cero filas TotalPages es 0 y Page es 1.
type Page struct {
	Rows       []Row
	Page       int
	TotalPages int
	Total      int
}

// View filtra, deriva, ordena y pagina. No modifica items.
func View(items []entity.InventoryItem, q Query) Page {
	rows := Derive(Filter(items, q.Search, q.Type))
	SortRows(rows, q.Sort)
	pageRows, page, totalPages := Paginate(rows, q.Page)
	return Page{Rows: pageRows, Page: page, TotalPages: totalPages, Total: len(rows)}
}

// Filter aplica la política del catálogo más tipo e id (como texto decimal).
func Filter(items []entity.InventoryItem, query, typeFilter string) []entity.InventoryItem {
	m := search.NewMatcher(query)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if !catalog.MatchesCategory(it.Type, typeFilter) {
			continue
		}
		if m.Empty() || catalog.Matches(it.Product, m) || m.Any(it.Type, strconv.FormatInt(it.ID, 10)) {
			out = append(out, it)
		}
	}
	return out
}

// Derive calcula disponible y nivel por fila.
func Derive(items []entity.InventoryItem) []Row {
	rows := make([]Row, len(items))
	for i, it := range items {
		avail := it.Available()
		rows[i] = Row{InventoryItem: it, Available: avail, Status: TierFor(avail)}
	}
	return rows
}

// SortRows ordenamiento estable. En descendente los empates conservan el orden original.
func SortRows(rows []Row, s Sort) {
	if s.Key == "" {
		return
	}
	compare := comparator(s.Key)
	if s.Dir == Desc {
		slices.SortStableFunc(rows, func(a, b Row) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(rows, compare)
}

func comparator(key SortKey) func(a, b Row) int {
	switch key {
	case KeyID:
		return func(a, b Row) int { return cmp.Compare(a.ID, b.ID) }
	case KeyName:
		return func(a, b Row) int { return strings.Compare(search.Fold(a.Name), search.Fold(b.Name)) }
	case KeyType:
		return func(a, b Row) int { return strings.Compare(search.Fold(a.Type), search.Fold(b.Type)) }
	case KeyLocation:
		return func(a, b Row) int { return strings.Compare(search.Fold(a.Location), search.Fold(b.Location)) }
	case KeyPrice:
		return func(a, b Row) int { return a.Price.Cmp(b.Price) }
	case KeyStock:
		return func(a, b Row) int { return cmp.Compare(a.Stock, b.Stock) }
	case KeyReserved:
		return func(a, b Row) int { return cmp.Compare(a.Reserved, b.Reserved) }
	case KeyAvailable:
		return func(a, b Row) int { return cmp.Compare(a.Available, b.Available) }
	case KeyStatus:
		return func(a, b Row) int { return cmp.Compare(a.Status.Weight(), b.Status.Weight()) }
	default:
		return func(a, b Row) int { return 0 }
	}
}

// TotalPages ceil(n / PageSize).
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Paginate recorta la página pedida, acotada a [1, totalPages].
func Paginate(rows []Row, page int) ([]Row, int, int) {
	total := TotalPages(len(rows))
	if total == 0 {
		return []Row{}, 1, 0
	}
	page = min(max(page, 1), total)
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(rows))
	return rows[start:end], page, total
}
