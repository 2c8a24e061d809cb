package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
)

func invItem(id int64, name string) entity.InventoryItem {
	return entity.InventoryItem{Product: entity.Product{ID: id, Name: name, Type: "Mármol"}, Stock: 10}
}

func TestInventoryRepo_IDsNuncaSeReutilizan(t *testing.T) {
	repo := memory.NewInventoryRepository([]entity.InventoryItem{invItem(1, "A"), invItem(2, "B"), invItem(3, "C")})

	require.NoError(t, repo.Delete(3))
	nuevo := invItem(0, "D")
	require.NoError(t, repo.Create(&nuevo))
	assert.Equal(t, int64(4), nuevo.ID, "tras borrar el último id, el contador no retrocede")

	require.NoError(t, repo.Delete(2))
	otro := invItem(0, "E")
	require.NoError(t, repo.Create(&otro))
	assert.Equal(t, int64(5), otro.ID, "len+1 repetiría el id 4")

	items, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestInventoryRepo_UpdateYDeleteInexistente(t *testing.T) {
	repo := memory.NewInventoryRepository(nil)
	missing := invItem(42, "X")
	assert.ErrorIs(t, repo.Update(&missing), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(42), domain.ErrNotFound)

	got, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInventoryRepo_CreateConcurrenteIDsUnicos(t *testing.T) {
	repo := memory.NewInventoryRepository(nil)
	var wg sync.WaitGroup
	ids := make([]int64, 50)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			it := invItem(0, "P")
			_ = repo.Create(&it)
			ids[i] = it.ID
		}(i)
	}
	wg.Wait()

	seen := map[int64]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "id duplicado %d", id)
		seen[id] = true
	}
}

func TestQuoteRepo_NuevasPrimero(t *testing.T) {
	repo := memory.NewQuoteRepository([]entity.Quote{{ID: "a", Number: "COT-2026-001"}})
	require.NoError(t, repo.Create(&entity.Quote{ID: "b", Number: "COT-2026-002"}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)

	assert.ErrorIs(t, repo.Delete("zzz"), domain.ErrNotFound)
	require.NoError(t, repo.Delete("a"))
	list, _ = repo.List()
	assert.Len(t, list, 1)
}

func TestQuoteRepo_CopiasIndependientes(t *testing.T) {
	repo := memory.NewQuoteRepository(nil)
	q := entity.Quote{ID: "a", Items: []entity.QuoteItem{{ID: "i1", ProductName: "Carrara"}}}
	require.NoError(t, repo.Create(&q))
	q.Items[0].ProductName = "modificado"

	got, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Carrara", got.Items[0].ProductName)
}

func TestUserRepo_EmailUnicoSinMayusculas(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(&entity.User{ID: "1", Email: "Admin@NewTop.com"}))
	assert.ErrorIs(t, repo.Create(&entity.User{ID: "2", Email: "admin@newtop.com"}), domain.ErrEmailAlreadyExists)

	u, err := repo.FindByEmail(" ADMIN@newtop.com ")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "1", u.ID)
}

func TestSessionStore_Slot(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionStore()
	v, err := s.Load(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Save(ctx, "user", []byte(`{"id":"x"}`)))
	v, err = s.Load(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x"}`, string(v))

	require.NoError(t, s.Delete(ctx, "user"))
	v, _ = s.Load(ctx, "user")
	assert.Nil(t, v)
}
