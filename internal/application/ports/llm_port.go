package ports

import (
	"context"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

// AdvisorSuggestion material elegido por el asesor, por id de catálogo.
type AdvisorSuggestion struct {
	ProductID int64
	Reason    string
}

// MaterialAdvisor puerto de salida hacia un LLM que recomienda materiales del catálogo.
// Cualquier adaptador (Anthropic, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type MaterialAdvisor interface {
	SuggestMaterials(ctx context.Context, description string, catalog []entity.Product) ([]AdvisorSuggestion, error)
	// Enabled false cuando el adaptador no tiene credenciales; el caso de uso usa el respaldo local.
	Enabled() bool
}
