package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/application/assistant"
	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
	"github.com/newtop/marmoleria-api/internal/infrastructure/seed"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

type fakeAdvisor struct {
	enabled bool
	picks   []ports.AdvisorSuggestion
	err     error
	calls   int
}

func (f *fakeAdvisor) Enabled() bool { return f.enabled }

func (f *fakeAdvisor) SuggestMaterials(ctx context.Context, _ string, _ []entity.Product) ([]ports.AdvisorSuggestion, error) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("se esperaba un contexto con timeout")
	}
	return f.picks, f.err
}

func newUseCase(t *testing.T, advisor ports.MaterialAdvisor) *assistant.AssistantUseCase {
	t.Helper()
	products, err := seed.LoadCatalog("")
	require.NoError(t, err)
	return assistant.NewAssistantUseCase(memory.NewCatalog(products), advisor, logger.Nop())
}

func names(out *dto.SuggestionResponse) []string {
	res := []string{}
	for _, s := range out.Suggestions {
		res = append(res, s.Product.Name)
	}
	return res
}

func TestKeywords_NormalizaYDescartaCortas(t *testing.T) {
	assert.Equal(t, []string{"quiero", "cocina", "moderna", "negra"},
		assistant.Keywords("Quiero una COCINA moderna, negra; cocina de 20 m²"))
}

func TestSuggest_RespaldoPorPalabras(t *testing.T) {
	uc := newUseCase(t, nil)
	out, err := uc.Suggest(context.Background(), dto.SuggestionRequest{Description: "Baños de lujo marrón"})
	require.NoError(t, err)
	assert.Equal(t, assistant.SourceKeywords, out.Source)
	require.NotEmpty(t, out.Suggestions)
	assert.LessOrEqual(t, len(out.Suggestions), 3)
	assert.Equal(t, "Mármol Emperador", out.Suggestions[0].Product.Name, "coincide con baños, lujo y marrón")
	assert.Contains(t, out.Suggestions[0].Reason, "lujo")
}

func TestSuggest_SinCoincidencias(t *testing.T) {
	out, err := newUseCase(t, nil).Suggest(context.Background(), dto.SuggestionRequest{Description: "xyzw qwerty"})
	require.NoError(t, err)
	assert.Empty(t, out.Suggestions)
}

func TestSuggest_DescripcionVacia(t *testing.T) {
	_, err := newUseCase(t, nil).Suggest(context.Background(), dto.SuggestionRequest{Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSuggest_AsesorFiltraIdsFueraDelCatalogo(t *testing.T) {
	adv := &fakeAdvisor{enabled: true, picks: []ports.AdvisorSuggestion{
		{ProductID: 42, Reason: "inventado"},
		{ProductID: 2, Reason: "negro y resistente"},
		{ProductID: 2, Reason: "repetido"},
	}}
	out, err := newUseCase(t, adv).Suggest(context.Background(), dto.SuggestionRequest{Description: "cocina negra"})
	require.NoError(t, err)
	assert.Equal(t, assistant.SourceAnthropic, out.Source)
	assert.Equal(t, []string{"Granito Negro Absoluto"}, names(out))
	assert.Equal(t, "negro y resistente", out.Suggestions[0].Reason)
}

func TestSuggest_AsesorFallaUsaRespaldo(t *testing.T) {
	adv := &fakeAdvisor{enabled: true, err: errors.New("503")}
	out, err := newUseCase(t, adv).Suggest(context.Background(), dto.SuggestionRequest{Description: "terrazas"})
	require.NoError(t, err)
	assert.Equal(t, 1, adv.calls)
	assert.Equal(t, assistant.SourceKeywords, out.Source)
	assert.Equal(t, []string{"Mármol Travertino"}, names(out))
}

func TestSuggest_AsesorDeshabilitadoNoSeLlama(t *testing.T) {
	adv := &fakeAdvisor{enabled: false}
	_, err := newUseCase(t, adv).Suggest(context.Background(), dto.SuggestionRequest{Description: "islas"})
	require.NoError(t, err)
	assert.Zero(t, adv.calls)
}
