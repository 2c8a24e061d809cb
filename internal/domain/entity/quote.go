package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuoteStatusBorrador  = "borrador"
	QuoteStatusEnviada   = "enviada"
	QuoteStatusAceptada  = "aceptada"
	QuoteStatusRechazada = "rechazada"
	QuoteStatusExpirada  = "expirada"
)

// QuoteStatuses lista de estados válidos en orden de flujo.
var QuoteStatuses = []string{
	QuoteStatusBorrador,
	QuoteStatusEnviada,
	QuoteStatusAceptada,
	QuoteStatusRechazada,
	QuoteStatusExpirada,
}

// IsValidQuoteStatus indica si s es un estado conocido.
func IsValidQuoteStatus(s string) bool {
	for _, st := range QuoteStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// QuoteItem línea de cotización. ProductName y PricePerUnit se copian del catálogo al agregarla.
type QuoteItem struct {
	ID           string
	ProductID    int64
	ProductName  string
	Area         decimal.Decimal // m²
	PricePerUnit decimal.Decimal
}

// Subtotal área × precio, sin redondeo.
func (i QuoteItem) Subtotal() decimal.Decimal {
	return i.Area.Mul(i.PricePerUnit)
}

// Quote cotización a cliente. ID es un UUID; Number es el folio visible (COT-2026-001).
// Subtotal, Tax y Total se recalculan en cada guardado.
type Quote struct {
	ID            string
	Number        string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientAddress string
	ProjectType   string
	Items         []QuoteItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	CreatedDate   time.Time // solo fecha
	ValidUntil    time.Time // solo fecha
	Notes         string
	CreatedBy     string
	UpdatedAt     time.Time
}

// Clone copia la cotización sin compartir el slice de ítems.
func (q Quote) Clone() Quote {
	q.Items = append([]QuoteItem(nil), q.Items...)
	return q
}
