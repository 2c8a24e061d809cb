package quotes_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
	"github.com/newtop/marmoleria-api/internal/infrastructure/seed"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

var fixedNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

type fixture struct {
	uc   *quotes.QuoteUseCase
	repo *memory.QuoteRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	products, err := seed.LoadCatalog("")
	require.NoError(t, err)
	seeds := seed.Quotes("admin")
	repo := memory.NewQuoteRepository(seeds)
	numberer := quote.NewNumberer()
	for _, q := range seeds {
		numberer.Observe(q.Number)
	}
	uc := quotes.NewQuoteUseCase(repo, memory.NewCatalog(products), numberer, 30, logger.Nop(), ports.NopRecorder{}).
		WithClock(func() time.Time { return fixedNow })
	return fixture{uc: uc, repo: repo}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validSave() dto.SaveQuoteRequest {
	return dto.SaveQuoteRequest{
		ClientName:  "Laura Méndez",
		ClientEmail: "laura@example.com",
		ProjectType: "Cocina",
		Items: []dto.QuoteItemRequest{
			{ProductID: 1, Area: dec("10")},
			{ProductID: 3, Area: dec("2.5")},
		},
	}
}

func TestList_EstadisticasGlobales(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.List(dto.QuoteListQuery{Status: "aceptada"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "COT-2026-002", out.Items[0].Number)

	assert.Equal(t, 2, out.Stats.Total, "las estadísticas no dependen del filtro")
	assert.Equal(t, 1, out.Stats.Enviadas)
	assert.Equal(t, 1, out.Stats.Aceptadas)
	assert.True(t, out.Stats.TotalAmount.Equal(dec("3380")), "2088 + 1292")
}

func TestList_BusquedaPorClienteYFolio(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.List(dto.QuoteListQuery{Search: "MARÍA"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "COT-2026-001", out.Items[0].Number)

	out, err = f.uc.List(dto.QuoteListQuery{Search: "2026-00", Status: "todas"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	_, err = f.uc.List(dto.QuoteListQuery{Status: "archivada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_FolioVigenciaYTotales(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create("admin", validSave())
	require.NoError(t, err)

	assert.Equal(t, "COT-2026-003", out.Number)
	assert.Equal(t, "borrador", out.Status)
	assert.Equal(t, "2026-03-10", out.CreatedDate)
	assert.Equal(t, "2026-04-09", out.ValidUntil)
	assert.True(t, out.Subtotal.Equal(dec("1437.5")), "10×120 + 2.5×95")
	assert.True(t, out.Total.Equal(dec("1667.5")))

	list, err := f.uc.List(dto.QuoteListQuery{})
	require.NoError(t, err)
	assert.Equal(t, out.ID, list.Items[0].ID, "la nueva queda primero")
}

func TestCreate_ErroresAgregados(t *testing.T) {
	f := newFixture(t)
	in := validSave()
	in.ClientName = ""
	in.ClientEmail = " "
	in.Items = []dto.QuoteItemRequest{{ProductID: 99, Area: dec("3")}, {ProductID: 1, Area: dec("0")}}

	_, err := f.uc.Create("admin", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	fields := []string{}
	for _, fe := range domain.FieldErrors(err) {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"items[0].product_id", "items[1].area", "client_name", "client_email"}, fields)
}

func TestCreate_SinItems(t *testing.T) {
	f := newFixture(t)
	in := validSave()
	in.Items = nil
	_, err := f.uc.Create("admin", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "items", domain.FieldErrors(err)[0].Field)
}

func TestUpdate_ConservaFolioYFecha(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create("admin", validSave())
	require.NoError(t, err)

	in := validSave()
	in.Status = "enviada"
	in.Discount = dec("37.5")
	out, err := f.uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.Number, out.Number)
	assert.Equal(t, created.CreatedDate, out.CreatedDate)
	assert.Equal(t, "enviada", out.Status)
	assert.True(t, out.Total.Equal(dec("1630")))

	_, err = f.uc.Update("no-existe", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreview_NoGuarda(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Preview(dto.SaveQuoteRequest{Items: []dto.QuoteItemRequest{{ProductID: 2, Area: dec("8")}}, Discount: dec("100")})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec("1292")))

	list, _ := f.uc.List(dto.QuoteListQuery{})
	assert.Equal(t, 2, list.Total)

	_, err = f.uc.Preview(dto.SaveQuoteRequest{Items: []dto.QuoteItemRequest{{ProductID: 2, Area: dec("1")}}, Discount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItems_AgregarCambiarQuitar(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create("admin", validSave())
	require.NoError(t, err)

	out, err := f.uc.AddItem(created.ID, dto.QuoteItemRequest{ProductID: 2, Area: dec("1")})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	last := out.Items[2].ID
	out, err = f.uc.UpdateItemArea(created.ID, last, dto.QuoteItemAreaRequest{Area: dec("2")})
	require.NoError(t, err)
	assert.True(t, out.Items[2].Subtotal.Equal(dec("300")))

	out, err = f.uc.RemoveItem(created.ID, last)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	_, err = f.uc.RemoveItem(created.ID, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.UpdateItemArea(created.ID, out.Items[0].ID, dto.QuoteItemAreaRequest{Area: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemoveItem_UltimoNoSeGuarda(t *testing.T) {
	f := newFixture(t)
	in := validSave()
	in.Items = in.Items[:1]
	created, err := f.uc.Create("admin", in)
	require.NoError(t, err)

	_, err = f.uc.RemoveItem(created.ID, created.Items[0].ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.Get(created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestSetStatus(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create("admin", validSave())
	require.NoError(t, err)

	out, err := f.uc.SetStatus(created.ID, "Rechazada")
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRechazada, out.Status)

	_, err = f.uc.SetStatus(created.ID, "otro")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpireOverdue_SoloBorradorYEnviada(t *testing.T) {
	f := newFixture(t)
	n, err := f.uc.ExpireOverdue(context.Background(), time.Date(2026, time.March, 21, 3, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "solo COT-2026-001 está enviada y vencida; la aceptada no cambia")

	out, err := f.uc.List(dto.QuoteListQuery{Status: "expirada"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "COT-2026-001", out.Items[0].Number)

	n, err = f.uc.ExpireOverdue(context.Background(), time.Date(2026, time.March, 21, 3, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, n, "el barrido es idempotente")
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	list, _ := f.uc.List(dto.QuoteListQuery{})
	require.NoError(t, f.uc.Delete(list.Items[0].ID))
	assert.ErrorIs(t, f.uc.Delete(list.Items[0].ID), domain.ErrNotFound)
}
