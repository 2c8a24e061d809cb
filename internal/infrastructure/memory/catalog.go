package memory

import (
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.ProductCatalog = (*Catalog)(nil)

// Catalog catálogo inmutable cargado al arranque. Seguro para lectura concurrente.
type Catalog struct {
	products []entity.Product
	byID     map[int64]int
}

// NewCatalog copia los productos; el orden de entrada es el orden de listado.
func NewCatalog(products []entity.Product) *Catalog {
	c := &Catalog{
		products: make([]entity.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	for i, p := range products {
		c.products[i] = p.Clone()
		c.byID[p.ID] = i
	}
	return c
}

// List devuelve una copia del catálogo en orden original.
func (c *Catalog) List() ([]entity.Product, error) {
	out := make([]entity.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out, nil
}

// GetByID obtiene un producto por id; (nil, nil) si no existe.
func (c *Catalog) GetByID(id int64) (*entity.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, nil
	}
	p := c.products[i].Clone()
	return &p, nil
}
