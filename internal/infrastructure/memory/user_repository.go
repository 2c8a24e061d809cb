package memory

import (
	"strings"
	"sync"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo credenciales en memoria indexadas por email normalizado.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string
}

// NewUserRepository repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{byID: map[string]entity.User{}, byEmail: map[string]string{}}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create falla con ErrEmailAlreadyExists si el email ya está registrado.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := emailKey(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[user.ID] = *user
	r.byEmail[key] = user.ID
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	return &u, nil
}
