package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/infrastructure/pdf"
	"github.com/newtop/marmoleria-api/internal/infrastructure/seed"
)

func TestGenerateQuotePDF_DocumentoValido(t *testing.T) {
	g := pdf.NewQuotePDFGenerator(pdf.DefaultCompany)
	for _, q := range seed.Quotes("admin") {
		b, err := g.GenerateQuotePDF(context.Background(), q)
		require.NoError(t, err, q.Number)
		assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "%s debe ser un PDF", q.Number)
	}
}
