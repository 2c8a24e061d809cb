package catalog

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	"github.com/newtop/marmoleria-api/pkg/latency"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// QuoteRequestUseCase formulario público de solicitud de cotización.
// El envío pasa por una demora simulada cancelable; una solicitud cancelada no se guarda.
type QuoteRequestUseCase struct {
	catalog repository.ProductCatalog
	repo    repository.QuoteRequestRepository
	delay   time.Duration
	log     *logger.Logger
	metrics ports.Recorder
	now     func() time.Time
}

// NewQuoteRequestUseCase construye el caso de uso.
func NewQuoteRequestUseCase(
	catalog repository.ProductCatalog,
	repo repository.QuoteRequestRepository,
	delay time.Duration,
	log *logger.Logger,
	metrics ports.Recorder,
) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{
		catalog: catalog, repo: repo, delay: delay,
		log: log, metrics: metrics, now: time.Now,
	}
}

// EstimatedCost área × precio redondeado a entero.
func EstimatedCost(area, price decimal.Decimal) decimal.Decimal {
	return area.Mul(price).Round(0)
}

// Submit valida, espera la latencia simulada y guarda la solicitud.
func (uc *QuoteRequestUseCase) Submit(ctx context.Context, in dto.PublicQuoteRequest) (*dto.PublicQuoteResponse, error) {
	p, err := uc.catalog.GetByID(in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFound("producto", fmt.Sprint(in.ProductID))
	}
	if err := validatePublicRequest(in); err != nil {
		return nil, err
	}

	req := &entity.QuoteRequest{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		Area:          in.Area,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		ProjectType:   strings.TrimSpace(in.ProjectType),
		Message:       in.Message,
		EstimatedCost: EstimatedCost(in.Area, p.Price),
		CreatedAt:     uc.now(),
	}

	if err := latency.Wait(ctx, uc.delay); err != nil {
		uc.log.Info().Str("product", p.Name).Msg("solicitud de cotización cancelada antes de enviarse")
		return nil, fmt.Errorf("enviar solicitud: %w", err)
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, fmt.Errorf("guardar solicitud: %w", err)
	}
	uc.metrics.QuoteRequestReceived()
	uc.log.Info().
		Str("request_id", req.ID).
		Int64("product_id", req.ProductID).
		Str("estimated_cost", req.EstimatedCost.String()).
		Msg("solicitud de cotización recibida")

	out := toPublicQuoteResponse(*req)
	return &out, nil
}

// List solicitudes recibidas, en orden de llegada.
func (uc *QuoteRequestUseCase) List() (*dto.PublicQuoteListResponse, error) {
	reqs, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	out := &dto.PublicQuoteListResponse{Items: make([]dto.PublicQuoteResponse, 0, len(reqs)), Total: len(reqs)}
	for _, r := range reqs {
		out.Items = append(out.Items, toPublicQuoteResponse(r))
	}
	return out, nil
}

func validatePublicRequest(in dto.PublicQuoteRequest) error {
	var errs domain.ValidationErrors
	if !in.Area.IsPositive() {
		errs.Add("area", "debe ser mayor que 0")
	}
	required := []struct{ field, value string }{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"project_type", in.ProjectType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs.Add(r.field, "requerido")
		}
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs.Add("email", "formato inválido")
		}
	}
	return errs.Err()
}

func toPublicQuoteResponse(r entity.QuoteRequest) dto.PublicQuoteResponse {
	return dto.PublicQuoteResponse{
		ID:            r.ID,
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		Area:          r.Area,
		ClientName:    strings.TrimSpace(r.FirstName + " " + r.LastName),
		Email:         r.Email,
		Phone:         r.Phone,
		ProjectType:   r.ProjectType,
		Message:       r.Message,
		EstimatedCost: r.EstimatedCost,
		CreatedAt:     r.CreatedAt,
	}
}
