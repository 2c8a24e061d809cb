package repository

import "github.com/newtop/marmoleria-api/internal/domain/entity"

// ProductCatalog catálogo de materiales, de solo lectura. GetByID devuelve (nil, nil) si no existe.
type ProductCatalog interface {
	List() ([]entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
}
