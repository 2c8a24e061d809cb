package memory

import (
	"sync"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo cotizaciones en memoria; las nuevas se anteponen.
type QuoteRepo struct {
	mu     sync.RWMutex
	quotes []entity.Quote
}

// NewQuoteRepository seed en el orden dado (la primera es la más reciente).
func NewQuoteRepository(seed []entity.Quote) *QuoteRepo {
	r := &QuoteRepo{quotes: make([]entity.Quote, 0, len(seed))}
	for _, q := range seed {
		r.quotes = append(r.quotes, q.Clone())
	}
	return r
}

// Create antepone la cotización.
func (r *QuoteRepo) Create(q *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(q.ID) >= 0 {
		return domain.ConflictError{Entity: "cotización", ID: q.ID, State: "existente"}
	}
	r.quotes = append([]entity.Quote{q.Clone()}, r.quotes...)
	return nil
}

// GetByID (nil, nil) si no existe.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		q := r.quotes[i].Clone()
		return &q, nil
	}
	return nil, nil
}

// Update reemplaza en su posición.
func (r *QuoteRepo) Update(q *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(q.ID)
	if i < 0 {
		return domain.NewNotFound("cotización", q.ID)
	}
	r.quotes[i] = q.Clone()
	return nil
}

// Delete elimina por id.
func (r *QuoteRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.NewNotFound("cotización", id)
	}
	r.quotes = append(r.quotes[:i], r.quotes[i+1:]...)
	return nil
}

// List copia, más recientes primero.
func (r *QuoteRepo) List() ([]entity.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Quote, len(r.quotes))
	for i, q := range r.quotes {
		out[i] = q.Clone()
	}
	return out, nil
}

func (r *QuoteRepo) indexOf(id string) int {
	for i, q := range r.quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

var _ repository.QuoteRequestRepository = (*QuoteRequestRepo)(nil)

// QuoteRequestRepo solicitudes públicas en orden de llegada.
type QuoteRequestRepo struct {
	mu       sync.RWMutex
	requests []entity.QuoteRequest
}

// NewQuoteRequestRepository repositorio vacío.
func NewQuoteRequestRepository() *QuoteRequestRepo {
	return &QuoteRequestRepo{}
}

func (r *QuoteRequestRepo) Create(req *entity.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, *req)
	return nil
}

func (r *QuoteRequestRepo) List() ([]entity.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.QuoteRequest(nil), r.requests...), nil
}
