package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

func reservation(id, name, email, phone, product, ptype string, qty, total int64, reserved, install time.Time, status, notes string) entity.Reservation {
	return entity.Reservation{
		ID: id, ClientName: name, ClientEmail: email, ClientPhone: phone,
		ProductName: product, ProductType: ptype,
		Quantity: decimal.NewFromInt(qty), TotalPrice: decimal.NewFromInt(total),
		ReservationDate: reserved, InstallationDate: install,
		Status: status, Notes: notes,
	}
}

// Reservations las cinco reservas de ejemplo del panel de clientes.
func Reservations() []entity.Reservation {
	return []entity.Reservation{
		reservation("RSV-001", "María González", "maria@example.com", "+58 412-1234567", "Calacatta Gold", "Mármol",
			25, 3750, day(2024, time.February, 15), day(2024, time.March, 1), entity.ReservationConfirmed,
			"Cliente solicita instalación en cocina principal"),
		reservation("RSV-002", "Carlos Pérez", "carlos@example.com", "+58 424-9876543", "Negro Absoluto", "Granito",
			40, 4800, day(2024, time.February, 18), day(2024, time.March, 5), entity.ReservationPending,
			"Proyecto comercial - Lobby de edificio"),
		reservation("RSV-003", "Ana Rodríguez", "ana@example.com", "+58 414-5555555", "Cuarzo Blanco", "Cuarzo",
			15, 2250, day(2024, time.February, 20), day(2024, time.March, 10), entity.ReservationInProgress,
			"Encimera de baño"),
		reservation("RSV-004", "Luis Martínez", "luis@example.com", "+58 426-7777777", "Travertino Romano", "Travertino",
			60, 4200, day(2024, time.February, 10), day(2024, time.February, 28), entity.ReservationCompleted,
			"Piso de sala y comedor - Cliente muy satisfecho"),
		reservation("RSV-005", "Patricia Silva", "patricia@example.com", "+58 412-3333333", "Emperador Dark", "Mármol",
			30, 5400, day(2024, time.February, 12), day(2024, time.February, 25), entity.ReservationCancelled,
			"Cliente decidió posponer el proyecto"),
	}
}
