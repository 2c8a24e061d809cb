package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva de cliente.
const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationInProgress = "in-progress"
	ReservationCompleted  = "completed"
	ReservationCancelled  = "cancelled"
)

// Reservation reserva de material e instalación para un cliente (RSV-001...).
type Reservation struct {
	ID               string
	ClientName       string
	ClientEmail      string
	ClientPhone      string
	ProductName      string
	ProductType      string
	Quantity         decimal.Decimal // m²
	TotalPrice       decimal.Decimal
	ReservationDate  time.Time
	InstallationDate time.Time
	Status           string
	Notes            string
}

// IsActive pendiente, confirmada o en progreso.
func (r Reservation) IsActive() bool {
	switch r.Status {
	case ReservationPending, ReservationConfirmed, ReservationInProgress:
		return true
	}
	return false
}
