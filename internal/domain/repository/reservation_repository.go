package repository

import "github.com/newtop/marmoleria-api/internal/domain/entity"

// ReservationRepository reservas de clientes.
type ReservationRepository interface {
	List() ([]entity.Reservation, error)
	GetByID(id string) (*entity.Reservation, error)
	Update(r *entity.Reservation) error
}
