package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemRequest línea de cotización en la entrada.
type QuoteItemRequest struct {
	ProductID int64           `json:"product_id"`
	Area      decimal.Decimal `json:"area"`
}

// SaveQuoteRequest alta o edición completa de una cotización.
type SaveQuoteRequest struct {
	ClientName     string             `json:"client_name"`
	ClientEmail    string             `json:"client_email"`
	ClientPhone    string             `json:"client_phone"`
	ClientAddress  string             `json:"client_address"`
	ProjectType    string             `json:"project_type"`
	Items          []QuoteItemRequest `json:"items"`
	Discount       decimal.Decimal    `json:"discount"`
	Status         string             `json:"status"`
	Notes          string             `json:"notes"`
	ValidUntilDays int                `json:"valid_until_days"`
}

// QuoteStatusRequest cambio de estado.
type QuoteStatusRequest struct {
	Status string `json:"status"`
}

// QuoteItemAreaRequest cambio de área de una línea.
type QuoteItemAreaRequest struct {
	Area decimal.Decimal `json:"area"`
}

// QuoteListQuery filtros del listado. Status "todas" no filtra.
type QuoteListQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

// QuoteItemResponse línea con su subtotal.
type QuoteItemResponse struct {
	ID           string          `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Area         decimal.Decimal `json:"area"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// QuoteTotalsResponse totales sin redondear.
type QuoteTotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// QuoteResponse salida de una cotización.
type QuoteResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	ClientName    string              `json:"client_name"`
	ClientEmail   string              `json:"client_email"`
	ClientPhone   string              `json:"client_phone"`
	ClientAddress string              `json:"client_address,omitempty"`
	ProjectType   string              `json:"project_type"`
	Items         []QuoteItemResponse `json:"items"`
	QuoteTotalsResponse
	Status      string    `json:"status"`
	CreatedDate string    `json:"created_date"`
	ValidUntil  string    `json:"valid_until"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QuotePreviewResponse totales calculados sin guardar.
type QuotePreviewResponse struct {
	Items []QuoteItemResponse `json:"items"`
	QuoteTotalsResponse
}

// QuoteStatsResponse tarjetas del listado.
type QuoteStatsResponse struct {
	Total       int             `json:"total"`
	Enviadas    int             `json:"enviadas"`
	Aceptadas   int             `json:"aceptadas"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// QuoteListResponse listado filtrado con estadísticas globales.
type QuoteListResponse struct {
	Items []QuoteResponse    `json:"items"`
	Total int                `json:"total"`
	Stats QuoteStatsResponse `json:"stats"`
}

// QuoteExpiryResponse resultado del barrido de vencimiento.
type QuoteExpiryResponse struct {
	Expired int `json:"expired"`
}
