package quotes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
	"github.com/newtop/marmoleria-api/internal/infrastructure/seed"
)

type stubRenderer struct {
	got entity.Quote
	err error
}

func (s *stubRenderer) GenerateQuotePDF(_ context.Context, q entity.Quote) ([]byte, error) {
	s.got = q
	return []byte("%PDF"), s.err
}

func (s *stubRenderer) EncodeQuoteCSV(q entity.Quote) ([]byte, error) {
	s.got = q
	return []byte("csv"), s.err
}

func TestExport_NombreDeArchivoEsElFolio(t *testing.T) {
	seeds := seed.Quotes("admin")
	r := &stubRenderer{}
	uc := quotes.NewExportUseCase(memory.NewQuoteRepository(seeds), r, r)

	b, name, err := uc.PDF(context.Background(), seeds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b))
	assert.Equal(t, seeds[0].Number+".pdf", name)
	assert.Equal(t, seeds[0].Number, r.got.Number)

	_, name, err = uc.CSV(seeds[1].ID)
	require.NoError(t, err)
	assert.Equal(t, seeds[1].Number+".csv", name)
}

func TestExport_ErroresSeEnvuelven(t *testing.T) {
	r := &stubRenderer{err: errors.New("fuente no disponible")}
	seeds := seed.Quotes("admin")
	uc := quotes.NewExportUseCase(memory.NewQuoteRepository(seeds), r, r)

	_, _, err := uc.PDF(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = uc.CSV(seeds[0].ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuente no disponible")
}
