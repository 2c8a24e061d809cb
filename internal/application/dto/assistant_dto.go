package dto

// SuggestionRequest descripción libre del proyecto.
type SuggestionRequest struct {
	Description string `json:"description"`
}

// MaterialSuggestion material sugerido con su motivo.
type MaterialSuggestion struct {
	Product ProductResponse `json:"product"`
	Reason  string          `json:"reason"`
}

// SuggestionResponse Source indica quién generó las sugerencias: "anthropic" o "keywords".
type SuggestionResponse struct {
	Source      string               `json:"source"`
	Suggestions []MaterialSuggestion `json:"suggestions"`
}
