package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PublicQuoteRequest formulario público "Solicitar cotización".
type PublicQuoteRequest struct {
	ProductID   int64           `json:"product_id"`
	Area        decimal.Decimal `json:"area"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	ProjectType string          `json:"project_type"`
	Message     string          `json:"message"`
}

// PublicQuoteResponse solicitud recibida.
type PublicQuoteResponse struct {
	ID            string          `json:"id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Area          decimal.Decimal `json:"area"`
	ClientName    string          `json:"client_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	ProjectType   string          `json:"project_type"`
	Message       string          `json:"message,omitempty"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PublicQuoteListResponse solicitudes recibidas (admin).
type PublicQuoteListResponse struct {
	Items []PublicQuoteResponse `json:"items"`
	Total int                   `json:"total"`
}
