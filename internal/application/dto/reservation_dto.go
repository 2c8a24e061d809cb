package dto

import "github.com/shopspring/decimal"

// ReservationListQuery filtros: tab all | active | <estado>.
type ReservationListQuery struct {
	Search string `query:"search"`
	Tab    string `query:"tab"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID               string          `json:"id"`
	ClientName       string          `json:"client_name"`
	ClientEmail      string          `json:"client_email"`
	ClientPhone      string          `json:"client_phone"`
	ProductName      string          `json:"product_name"`
	ProductType      string          `json:"product_type"`
	Quantity         decimal.Decimal `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ReservationDate  string          `json:"reservation_date"`
	InstallationDate string          `json:"installation_date"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
}

// ReservationListResponse listado filtrado.
type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Total int                   `json:"total"`
}

// ReservationStatsResponse tarjetas del panel de clientes.
type ReservationStatsResponse struct {
	Total     int             `json:"total"`
	Active    int             `json:"active"`
	Completed int             `json:"completed"`
	Cancelled int             `json:"cancelled"`
	Revenue   decimal.Decimal `json:"revenue"`
}
