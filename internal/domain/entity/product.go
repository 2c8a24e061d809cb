package entity

import "github.com/shopspring/decimal"

// Product material del catálogo público (mármol, granito, cuarzo...).
// Type es la categoría usada por los filtros.
type Product struct {
	ID          int64
	Name        string
	Type        string
	Price       decimal.Decimal // precio por m²
	Image       string
	Description string
	Application string
	Features    []string
	Dimensions  string
	Finish      string
}

// Clone copia el producto sin compartir el slice de Features.
func (p Product) Clone() Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}
