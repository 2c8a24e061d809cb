// Package seed datos iniciales: catálogo embebido, inventario aleatorio, cotizaciones y reservas de ejemplo.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Products []catalogProduct `yaml:"products"`
}

type catalogProduct struct {
	ID          int64    `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Price       string   `yaml:"price"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
	Application string   `yaml:"application"`
	Features    []string `yaml:"features"`
	Dimensions  string   `yaml:"dimensions"`
	Finish      string   `yaml:"finish"`
}

// LoadCatalog lee el catálogo desde path, o el embebido si path está vacío.
func LoadCatalog(path string) ([]entity.Product, error) {
	raw := embeddedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("leer catálogo: %w", err)
		}
		raw = b
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodifica el YAML y valida ids únicos y precios positivos.
func ParseCatalog(raw []byte) ([]entity.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}
	seen := make(map[int64]bool, len(f.Products))
	out := make([]entity.Product, 0, len(f.Products))
	for _, p := range f.Products {
		if seen[p.ID] {
			return nil, fmt.Errorf("catálogo: id %d duplicado", p.ID)
		}
		seen[p.ID] = true
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("catálogo: precio de %d: %w", p.ID, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("catálogo: precio de %d debe ser positivo", p.ID)
		}
		out = append(out, entity.Product{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			Price:       price,
			Image:       p.Image,
			Description: p.Description,
			Application: p.Application,
			Features:    p.Features,
			Dimensions:  p.Dimensions,
			Finish:      p.Finish,
		})
	}
	return out, nil
}
