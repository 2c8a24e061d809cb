package repository

import "github.com/newtop/marmoleria-api/internal/domain/entity"

// QuoteRepository cotizaciones; List devuelve las más recientes primero.
type QuoteRepository interface {
	Create(q *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	Update(q *entity.Quote) error
	Delete(id string) error
	List() ([]entity.Quote, error)
}

// QuoteRequestRepository solicitudes públicas de cotización.
type QuoteRequestRepository interface {
	Create(r *entity.QuoteRequest) error
	List() ([]entity.QuoteRequest, error)
}
