package repository

import "github.com/newtop/marmoleria-api/internal/domain/entity"

// InventoryRepository colección completa del inventario (DIP).
// Create asigna el id desde un contador estrictamente creciente; Update y Delete
// devuelven NotFoundError si el id no existe.
type InventoryRepository interface {
	List() ([]entity.InventoryItem, error)
	GetByID(id int64) (*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	Update(item *entity.InventoryItem) error
	Delete(id int64) error
}
