package memory

import (
	"context"
	"sync"

	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore slot clave-valor en proceso; se usa cuando no hay DATABASE_URL.
type SessionStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewSessionStore store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{slots: map[string][]byte{}}
}

func (s *SessionStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *SessionStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *SessionStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
