package memory

import (
	"fmt"
	"sync"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo inventario en memoria. Los ids nuevos salen de un contador que nunca retrocede,
// aunque se borren ítems.
type InventoryRepo struct {
	mu     sync.RWMutex
	items  []entity.InventoryItem
	lastID int64
}

// NewInventoryRepository carga los ítems iniciales; el contador arranca en el mayor id existente.
func NewInventoryRepository(seed []entity.InventoryItem) *InventoryRepo {
	r := &InventoryRepo{items: make([]entity.InventoryItem, 0, len(seed))}
	for _, it := range seed {
		r.items = append(r.items, it.Clone())
		r.lastID = max(r.lastID, it.ID)
	}
	return r
}

// List copia de la colección completa en orden de inserción.
func (r *InventoryRepo) List() ([]entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.InventoryItem, len(r.items))
	for i, it := range r.items {
		out[i] = it.Clone()
	}
	return out, nil
}

// GetByID obtiene un ítem; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		it := r.items[i].Clone()
		return &it, nil
	}
	return nil, nil
}

// Create asigna el siguiente id y agrega al final.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	item.ID = r.lastID
	r.items = append(r.items, item.Clone())
	return nil
}

// Update reemplaza el ítem con el mismo id.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(item.ID)
	if i < 0 {
		return domain.NewNotFound("producto de inventario", fmt.Sprint(item.ID))
	}
	r.items[i] = item.Clone()
	return nil
}

// Delete elimina por id.
func (r *InventoryRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.NewNotFound("producto de inventario", fmt.Sprint(id))
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *InventoryRepo) indexOf(id int64) int {
	for i, it := range r.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
