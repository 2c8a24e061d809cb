package quotes

import (
	"context"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

// QuotePDFGenerator genera el PDF de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q entity.Quote) ([]byte, error)
}

// QuoteCSVEncoder genera el CSV de una cotización.
type QuoteCSVEncoder interface {
	EncodeQuoteCSV(q entity.Quote) ([]byte, error)
}
