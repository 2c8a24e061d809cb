package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/domain/catalog"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Mármol Carrara Blanco", Type: "Mármol", Price: decimal.NewFromInt(120),
			Description: "Mármol italiano de alta calidad", Application: "Pisos, paredes, cubiertas",
			Features: []string{"Resistente", "Elegante"}, Finish: "Pulido"},
		{ID: 2, Name: "Granito Negro Absoluto", Type: "Granito", Price: decimal.NewFromInt(150),
			Description: "Granito negro uniforme", Application: "Cocinas, baños",
			Features: []string{"Alta dureza"}, Finish: "Pulido brillante"},
		{ID: 3, Name: "Cuarzo Blanco Polar", Type: "Cuarzo", Price: decimal.NewFromInt(200),
			Description: "Cuarzo de ingeniería", Application: "Cubiertas de cocina",
			Features: []string{"No poroso"}, Finish: "Mate"},
	}
}

func ids(products []entity.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_CategoriaSinMayusculas(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "", "granito")
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilter_BusquedaEnCaracteristicas(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "POROSO", catalog.CategoryAll)
	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilter_BusquedaConAcentosYMayusculas(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "MÁRMOL", catalog.CategoryAll)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilter_ConsultaVaciaYAllDevuelveTodoEnOrden(t *testing.T) {
	products := sampleProducts()
	got := catalog.Filter(products, "", catalog.CategoryAll)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestFilter_CombinaCategoriaYBusqueda(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "cocina", "Cuarzo")
	assert.Equal(t, []int64{3}, ids(got))

	got = catalog.Filter(sampleProducts(), "cocina", "Mármol")
	assert.Empty(t, got)
}

func TestFilter_ResultadoEsSubconjunto(t *testing.T) {
	products := sampleProducts()
	for _, q := range []string{"", "pulido", "xyz", "a"} {
		for _, c := range []string{catalog.CategoryAll, "Mármol", "Cuarzo", "Ónix"} {
			got := catalog.Filter(products, q, c)
			require.LessOrEqual(t, len(got), len(products))
			for _, p := range got {
				assert.Contains(t, ids(products), p.ID)
			}
		}
	}
}

func TestCategories_OrdenDePrimeraAparicion(t *testing.T) {
	products := append(sampleProducts(), entity.Product{ID: 4, Name: "Otro", Type: "Mármol"})
	assert.Equal(t, []string{"Mármol", "Granito", "Cuarzo"}, catalog.Categories(products))
}
