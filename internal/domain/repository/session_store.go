package repository

import "context"

// SessionStore slot clave-valor persistente donde se refleja la sesión viva.
// Load devuelve (nil, nil) si la clave no existe.
type SessionStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
