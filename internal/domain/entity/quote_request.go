package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest solicitud de cotización enviada desde el formulario público.
type QuoteRequest struct {
	ID            string
	ProductID     int64
	ProductName   string
	Area          decimal.Decimal
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	ProjectType   string
	Message       string
	EstimatedCost decimal.Decimal // redondeado a entero
	CreatedAt     time.Time
}
