package dto

// DateLayout formato de fechas sin hora en las respuestas.
const DateLayout = "2006-01-02"

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
}

// FieldError fallo de validación de un campo.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse cuerpo de error HTTP. RedirectTo lo llena la guardia de rutas.
type ErrorResponse struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields,omitempty"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}
