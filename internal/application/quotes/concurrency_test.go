package quotes_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
	"github.com/newtop/marmoleria-api/internal/infrastructure/seed"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// slowRepo demora cada lectura después de tomarla, abriendo la ventana entre leer y guardar.
type slowRepo struct {
	*memory.QuoteRepo
	delay time.Duration
}

func (r slowRepo) GetByID(id string) (*entity.Quote, error) {
	q, err := r.QuoteRepo.GetByID(id)
	time.Sleep(r.delay)
	return q, err
}

func (r slowRepo) List() ([]entity.Quote, error) {
	all, err := r.QuoteRepo.List()
	time.Sleep(r.delay)
	return all, err
}

func newSlowFixture(t *testing.T, delay time.Duration) (*quotes.QuoteUseCase, *memory.QuoteRepo) {
	t.Helper()
	products, err := seed.LoadCatalog("")
	require.NoError(t, err)
	seeds := seed.Quotes("admin")
	repo := memory.NewQuoteRepository(seeds)
	numberer := quote.NewNumberer()
	for _, q := range seeds {
		numberer.Observe(q.Number)
	}
	uc := quotes.NewQuoteUseCase(slowRepo{QuoteRepo: repo, delay: delay}, memory.NewCatalog(products),
		numberer, 30, logger.Nop(), ports.NopRecorder{}).
		WithClock(func() time.Time { return fixedNow })
	return uc, repo
}

func TestAddItem_ConcurrenteNoPierdeLineas(t *testing.T) {
	uc, repo := newSlowFixture(t, 5*time.Millisecond)
	created, err := uc.Create("admin", validSave())
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(created.ID, dto.QuoteItemRequest{ProductID: 2, Area: dec("1")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2+workers)
}

func TestExpireOverdue_NoPisaEdicionConcurrente(t *testing.T) {
	uc, repo := newSlowFixture(t, 20*time.Millisecond)
	all, err := repo.List()
	require.NoError(t, err)
	var target string
	for _, q := range all {
		if q.Number == "COT-2026-001" {
			target = q.ID
		}
	}
	require.NotEmpty(t, target)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := uc.ExpireOverdue(context.Background(), time.Date(2026, time.March, 21, 3, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
	}()
	time.Sleep(5 * time.Millisecond)
	_, err = uc.SetStatus(target, entity.QuoteStatusAceptada)
	require.NoError(t, err)
	<-done

	got, err := repo.GetByID(target)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAceptada, got.Status, "la edición posterior al barrido prevalece")
}
