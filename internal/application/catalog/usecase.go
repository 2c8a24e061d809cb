package catalog

import (
	"fmt"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/domain"
	domaincatalog "github.com/newtop/marmoleria-api/internal/domain/catalog"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

// CatalogUseCase consulta pública del catálogo.
type CatalogUseCase struct {
	repo repository.ProductCatalog
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductCatalog) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List filtra por búsqueda y categoría. Categoría vacía equivale a "All".
func (uc *CatalogUseCase) List(search, category string) (*dto.ProductListResponse, error) {
	if category == "" {
		category = domaincatalog.CategoryAll
	}
	products, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	filtered := domaincatalog.Filter(products, search, category)
	out := &dto.ProductListResponse{
		Items:    make([]dto.ProductResponse, 0, len(filtered)),
		Total:    len(filtered),
		Search:   search,
		Category: category,
	}
	for _, p := range filtered {
		out.Items = append(out.Items, dto.NewProductResponse(p))
	}
	return out, nil
}

// Categories "All" seguido de los tipos del catálogo en orden de aparición.
func (uc *CatalogUseCase) Categories() (*dto.CategoriesResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	cats := append([]string{domaincatalog.CategoryAll}, domaincatalog.Categories(products)...)
	return &dto.CategoriesResponse{Categories: cats}, nil
}

// GetByID detalle de un producto.
func (uc *CatalogUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound("producto", fmt.Sprint(id))
	}
	out := dto.NewProductResponse(*p)
	return &out, nil
}
