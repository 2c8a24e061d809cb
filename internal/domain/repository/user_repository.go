package repository

import "github.com/newtop/marmoleria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail no distingue mayúsculas y devuelve (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
