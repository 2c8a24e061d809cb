package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

const sessionSchema = `
	CREATE TABLE IF NOT EXISTS session_slots (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// SessionStore slot de sesión sobre la tabla session_slots; sobrevive reinicios del proceso.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore construye el adaptador. Llamar EnsureSchema antes de usarlo.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *SessionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("crear session_slots: %w", err)
	}
	return nil
}

// Load devuelve (nil, nil) si la clave no existe.
func (s *SessionStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM session_slots WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	return value, nil
}

func (s *SessionStore) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO session_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM session_slots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
