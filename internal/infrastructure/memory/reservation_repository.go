package memory

import (
	"sync"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo reservas en memoria.
type ReservationRepo struct {
	mu    sync.RWMutex
	items []entity.Reservation
}

// NewReservationRepository carga las reservas iniciales.
func NewReservationRepository(seed []entity.Reservation) *ReservationRepo {
	return &ReservationRepo{items: append([]entity.Reservation(nil), seed...)}
}

func (r *ReservationRepo) List() ([]entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Reservation(nil), r.items...), nil
}

func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			res := it
			return &res, nil
		}
	}
	return nil, nil
}

func (r *ReservationRepo) Update(res *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == res.ID {
			r.items[i] = *res
			return nil
		}
	}
	return domain.NewNotFound("reserva", res.ID)
}
