package quotes

import (
	"context"
	"fmt"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
)

// ExportUseCase descarga de cotizaciones en PDF o CSV. El nombre de archivo es el folio.
type ExportUseCase struct {
	repo repository.QuoteRepository
	pdf  QuotePDFGenerator
	csv  QuoteCSVEncoder
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(repo repository.QuoteRepository, pdf QuotePDFGenerator, csv QuoteCSVEncoder) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, csv: csv}
}

// PDF devuelve (bytes, "<folio>.pdf").
func (uc *ExportUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, "", domain.NewNotFound("cotización", id)
	}
	b, err := uc.pdf.GenerateQuotePDF(ctx, quote.Apply(*q))
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return b, q.Number + ".pdf", nil
}

// CSV devuelve (bytes, "<folio>.csv").
func (uc *ExportUseCase) CSV(id string) ([]byte, string, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("csv: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, "", domain.NewNotFound("cotización", id)
	}
	b, err := uc.csv.EncodeQuoteCSV(quote.Apply(*q))
	if err != nil {
		return nil, "", fmt.Errorf("csv: generación fallida: %w", err)
	}
	return b, q.Number + ".csv", nil
}
