package dto

import (
	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Application string          `json:"application"`
	Features    []string        `json:"features"`
	Dimensions  string          `json:"dimensions"`
	Finish      string          `json:"finish"`
}

// NewProductResponse mapea la entidad.
func NewProductResponse(p entity.Product) ProductResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Application: p.Application,
		Features:    features,
		Dimensions:  p.Dimensions,
		Finish:      p.Finish,
	}
}

// ProductListResponse resultado del filtro del catálogo.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
	Search   string            `json:"search"`
	Category string            `json:"category"`
}

// CategoriesResponse opciones del filtro de categoría ("All" primero).
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
