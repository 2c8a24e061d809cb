package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/infrastructure/postgres"
	"github.com/newtop/marmoleria-api/pkg/config"
)

func TestSessionStore_Slot(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	defer pool.Close()

	store := postgres.NewSessionStore(pool)
	require.NoError(t, store.EnsureSchema(ctx))
	const key = "test-slot"
	_ = store.Delete(ctx, key)

	v, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, store.Save(ctx, key, []byte(`{"session_id":"a"}`)))
	require.NoError(t, store.Save(ctx, key, []byte(`{"session_id":"b"}`)))
	v, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_id":"b"}`, string(v))

	require.NoError(t, store.Delete(ctx, key))
	v, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNewPool_SinURL(t *testing.T) {
	_, err := postgres.NewPool(context.Background(), config.DBConfig{})
	assert.Error(t, err)
}
