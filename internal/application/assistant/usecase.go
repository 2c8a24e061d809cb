// Package assistant asesor de materiales: recomienda productos del catálogo a partir de la
// descripción libre de un proyecto.
package assistant

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/catalog"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	"github.com/newtop/marmoleria-api/internal/domain/search"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// Orígenes de las sugerencias.
const (
	SourceAnthropic = "anthropic"
	SourceKeywords  = "keywords"
)

const (
	advisorTimeout = 10 * time.Second
	minKeywordLen  = 4
	maxSuggestions = 3
)

// AssistantUseCase usa el asesor LLM si está habilitado; si no está o falla, el respaldo por
// palabras clave sobre el motor de filtro del catálogo.
type AssistantUseCase struct {
	catalog repository.ProductCatalog
	advisor ports.MaterialAdvisor
	log     *logger.Logger
}

// NewAssistantUseCase advisor puede ser nil.
func NewAssistantUseCase(catalog repository.ProductCatalog, advisor ports.MaterialAdvisor, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{catalog: catalog, advisor: advisor, log: log}
}

// Suggest devuelve hasta tres materiales con su motivo.
func (uc *AssistantUseCase) Suggest(ctx context.Context, in dto.SuggestionRequest) (*dto.SuggestionResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.NewValidationError("description", "requerido")
	}
	products, err := uc.catalog.List()
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}

	if uc.advisor != nil && uc.advisor.Enabled() {
		if out := uc.fromAdvisor(ctx, desc, products); out != nil {
			return out, nil
		}
	}
	return &dto.SuggestionResponse{Source: SourceKeywords, Suggestions: KeywordSuggestions(desc, products)}, nil
}

// fromAdvisor nil si el asesor falla o no devuelve ningún id del catálogo.
func (uc *AssistantUseCase) fromAdvisor(ctx context.Context, desc string, products []entity.Product) *dto.SuggestionResponse {
	ctx, cancel := context.WithTimeout(ctx, advisorTimeout)
	defer cancel()

	picks, err := uc.advisor.SuggestMaterials(ctx, desc, products)
	if err != nil {
		uc.log.Warn().Err(err).Msg("asesor LLM falló; se usa el respaldo por palabras clave")
		return nil
	}
	byID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	seen := map[int64]bool{}
	out := &dto.SuggestionResponse{Source: SourceAnthropic, Suggestions: []dto.MaterialSuggestion{}}
	for _, s := range picks {
		p, ok := byID[s.ProductID]
		if !ok || seen[s.ProductID] {
			uc.log.Debug().Int64("product_id", s.ProductID).Msg("sugerencia fuera del catálogo descartada")
			continue
		}
		seen[s.ProductID] = true
		out.Suggestions = append(out.Suggestions, dto.MaterialSuggestion{Product: dto.NewProductResponse(p), Reason: s.Reason})
		if len(out.Suggestions) == maxSuggestions {
			break
		}
	}
	if len(out.Suggestions) == 0 {
		return nil
	}
	return out
}

// KeywordSuggestions aplica el filtro del catálogo a cada palabra de al menos cuatro letras
// y ordena por número de palabras coincidentes; los empates conservan el orden del catálogo.
func KeywordSuggestions(desc string, products []entity.Product) []dto.MaterialSuggestion {
	hits := make(map[int64][]string, len(products))
	for _, w := range Keywords(desc) {
		for _, p := range catalog.Filter(products, w, catalog.CategoryAll) {
			hits[p.ID] = append(hits[p.ID], w)
		}
	}
	ranked := make([]entity.Product, 0, len(hits))
	for _, p := range products {
		if len(hits[p.ID]) > 0 {
			ranked = append(ranked, p)
		}
	}
	slices.SortStableFunc(ranked, func(a, b entity.Product) int {
		return len(hits[b.ID]) - len(hits[a.ID])
	})
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	out := make([]dto.MaterialSuggestion, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, dto.MaterialSuggestion{
			Product: dto.NewProductResponse(p),
			Reason:  "Coincide con: " + strings.Join(hits[p.ID], ", "),
		})
	}
	return out
}

// Keywords palabras distintas de la descripción, normalizadas, en orden de aparición.
func Keywords(desc string) []string {
	words := strings.FieldsFunc(desc, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = search.Fold(w)
		if utf8.RuneCountInString(w) < minKeywordLen || slices.Contains(out, w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
