// Package quotes casos de uso de la consola de cotizaciones: listado, alta, edición, cambios de
// estado, líneas, vista previa de totales, vencimiento y exportación.
package quotes

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	"github.com/newtop/marmoleria-api/internal/domain/search"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// StatusAll valor del filtro de estado que no filtra.
const StatusAll = "todas"

// QuoteUseCase orquesta el motor de totales sobre el repositorio de cotizaciones.
// Toda escritura pasa por mu: lectura, cambio y guardado no se intercalan entre peticiones
// ni con el barrido de vencimiento.
type QuoteUseCase struct {
	mu             sync.Mutex
	repo           repository.QuoteRepository
	catalog        repository.ProductCatalog
	engine         *quote.Engine
	numberer       *quote.Numberer
	validUntilDays int
	log            *logger.Logger
	metrics        ports.Recorder
	now            func() time.Time
}

// NewQuoteUseCase construye el caso de uso. El numerador debe haber observado los folios existentes.
func NewQuoteUseCase(
	repo repository.QuoteRepository,
	catalog repository.ProductCatalog,
	numberer *quote.Numberer,
	validUntilDays int,
	log *logger.Logger,
	metrics ports.Recorder,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:           repo,
		catalog:        catalog,
		engine:         quote.NewEngine(catalog),
		numberer:       numberer,
		validUntilDays: validUntilDays,
		log:            log,
		metrics:        metrics,
		now:            time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *QuoteUseCase) WithClock(now func() time.Time) *QuoteUseCase {
	uc.now = now
	return uc
}

// List filtra por folio, cliente o email y por estado. Las estadísticas cubren todas las cotizaciones.
func (uc *QuoteUseCase) List(in dto.QuoteListQuery) (*dto.QuoteListResponse, error) {
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusAll
	}
	if status != StatusAll && !entity.IsValidQuoteStatus(status) {
		return nil, domain.NewValidationError("status", "estado desconocido")
	}
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar cotizaciones: %w", err)
	}

	m := search.NewMatcher(in.Search)
	out := &dto.QuoteListResponse{Items: make([]dto.QuoteResponse, 0, len(all))}
	for _, q := range all {
		if status != StatusAll && q.Status != status {
			continue
		}
		if !m.Any(q.Number, q.ClientName, q.ClientEmail) {
			continue
		}
		out.Items = append(out.Items, ToQuoteResponse(q))
	}
	out.Total = len(out.Items)
	out.Stats = computeStats(all)
	return out, nil
}

func computeStats(all []entity.Quote) dto.QuoteStatsResponse {
	s := dto.QuoteStatsResponse{Total: len(all)}
	for _, q := range all {
		switch q.Status {
		case entity.QuoteStatusEnviada:
			s.Enviadas++
		case entity.QuoteStatusAceptada:
			s.Aceptadas++
		}
		s.TotalAmount = s.TotalAmount.Add(q.Total)
	}
	return s
}

// Get detalle por id.
func (uc *QuoteUseCase) Get(id string) (*dto.QuoteResponse, error) {
	q, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	out := ToQuoteResponse(*q)
	return &out, nil
}

// Create guarda una cotización nueva con folio del año en curso. Estado por defecto: borrador.
func (uc *QuoteUseCase) Create(createdBy string, in dto.SaveQuoteRequest) (*dto.QuoteResponse, error) {
	now := uc.now()
	draft := entity.Quote{
		ID:          uuid.NewString(),
		CreatedDate: quote.DateOnly(now),
		CreatedBy:   createdBy,
		Status:      entity.QuoteStatusBorrador,
	}
	q, err := uc.fill(draft, in)
	if err != nil {
		return nil, err
	}
	q.ValidUntil = quote.ValidUntil(q.CreatedDate, uc.daysOr(in.ValidUntilDays))
	q.UpdatedAt = now

	uc.mu.Lock()
	defer uc.mu.Unlock()
	q.Number = uc.numberer.Next(now.Year())

	if err := uc.repo.Create(&q); err != nil {
		return nil, fmt.Errorf("guardar cotización: %w", err)
	}
	uc.saved(q, "cotización creada")
	out := ToQuoteResponse(q)
	return &out, nil
}

// Update reemplaza datos de cliente, líneas, descuento, estado y notas. Folio, fecha de creación
// y autor no cambian; la vigencia se recalcula solo si se envía ValidUntilDays.
func (uc *QuoteUseCase) Update(id string, in dto.SaveQuoteRequest) (*dto.QuoteResponse, error) {
	return uc.mutate(id, "cotización actualizada", func(current entity.Quote) (entity.Quote, error) {
		q, err := uc.fill(current, in)
		if err != nil {
			return entity.Quote{}, err
		}
		if in.ValidUntilDays > 0 {
			q.ValidUntil = quote.ValidUntil(q.CreatedDate, in.ValidUntilDays)
		}
		return q, nil
	})
}

// Delete elimina por id.
func (uc *QuoteUseCase) Delete(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar cotización: %w", err)
	}
	uc.log.Info().Str("quote_id", id).Msg("cotización eliminada")
	return nil
}

// Preview calcula líneas y totales sin guardar ni exigir datos del cliente.
func (uc *QuoteUseCase) Preview(in dto.SaveQuoteRequest) (*dto.QuotePreviewResponse, error) {
	q, errs := uc.buildItems(entity.Quote{Discount: in.Discount}, in.Items)
	if err := quote.ValidateDiscount(in.Discount, quote.Recompute(q)); err != nil {
		errs = append(errs, domain.FieldErrors(err)...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(q)
	return &dto.QuotePreviewResponse{Items: resp.Items, QuoteTotalsResponse: resp.QuoteTotalsResponse}, nil
}

// SetStatus cambia el estado.
func (uc *QuoteUseCase) SetStatus(id, status string) (*dto.QuoteResponse, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !entity.IsValidQuoteStatus(status) {
		return nil, domain.NewValidationError("status", "estado desconocido")
	}
	return uc.mutate(id, "estado de cotización actualizado", func(q entity.Quote) (entity.Quote, error) {
		q.Status = status
		return q, nil
	})
}

// AddItem agrega una línea a una cotización guardada.
func (uc *QuoteUseCase) AddItem(id string, in dto.QuoteItemRequest) (*dto.QuoteResponse, error) {
	return uc.mutate(id, "línea agregada", func(q entity.Quote) (entity.Quote, error) {
		return uc.engine.AddItem(q, in.ProductID, in.Area)
	})
}

// UpdateItemArea cambia el área de una línea.
func (uc *QuoteUseCase) UpdateItemArea(id, itemID string, in dto.QuoteItemAreaRequest) (*dto.QuoteResponse, error) {
	return uc.mutate(id, "área de línea actualizada", func(q entity.Quote) (entity.Quote, error) {
		return quote.UpdateItemArea(q, itemID, in.Area)
	})
}

// RemoveItem quita una línea. Quitar la última deja la cotización inválida y no se guarda.
func (uc *QuoteUseCase) RemoveItem(id, itemID string) (*dto.QuoteResponse, error) {
	return uc.mutate(id, "línea eliminada", func(q entity.Quote) (entity.Quote, error) {
		return quote.RemoveItem(q, itemID)
	})
}

// ExpireOverdue marca como expiradas las cotizaciones borrador o enviadas con vigencia vencida.
func (uc *QuoteUseCase) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	all, err := uc.repo.List()
	if err != nil {
		return 0, fmt.Errorf("listar cotizaciones: %w", err)
	}
	expired := 0
	for _, q := range all {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		if !quote.IsOverdue(q, now) {
			continue
		}
		q.Status = entity.QuoteStatusExpirada
		q.UpdatedAt = now
		if err := uc.repo.Update(&q); err != nil {
			return expired, fmt.Errorf("expirar %s: %w", q.Number, err)
		}
		expired++
		uc.log.Info().Str("number", q.Number).Msg("cotización expirada")
	}
	uc.metrics.QuotesExpired(expired)
	return expired, nil
}

func (uc *QuoteUseCase) load(id string) (*entity.Quote, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener cotización: %w", err)
	}
	if q == nil {
		return nil, domain.NewNotFound("cotización", id)
	}
	return q, nil
}

// fill copia la entrada sobre base, reconstruye las líneas desde el catálogo y valida todo junto.
func (uc *QuoteUseCase) fill(base entity.Quote, in dto.SaveQuoteRequest) (entity.Quote, error) {
	base.ClientName = strings.TrimSpace(in.ClientName)
	base.ClientEmail = strings.TrimSpace(in.ClientEmail)
	base.ClientPhone = strings.TrimSpace(in.ClientPhone)
	base.ClientAddress = strings.TrimSpace(in.ClientAddress)
	base.ProjectType = strings.TrimSpace(in.ProjectType)
	base.Discount = in.Discount
	base.Notes = in.Notes
	if s := strings.ToLower(strings.TrimSpace(in.Status)); s != "" {
		base.Status = s
	}
	base.Items = nil

	q, errs := uc.buildItems(base, in.Items)
	if err := quote.ValidateForSave(q); err != nil {
		for _, fe := range domain.FieldErrors(err) {
			if fe.Field == "items" && len(errs) > 0 && len(in.Items) > 0 {
				continue
			}
			errs = append(errs, fe)
		}
	}
	if err := errs.Err(); err != nil {
		return entity.Quote{}, err
	}
	return q, nil
}

// buildItems agrega cada línea con el motor; los fallos se reportan por posición.
func (uc *QuoteUseCase) buildItems(q entity.Quote, items []dto.QuoteItemRequest) (entity.Quote, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	q = quote.Apply(q)
	for i, it := range items {
		next, err := uc.engine.AddItem(q, it.ProductID, it.Area)
		switch {
		case err == nil:
			q = next
		case len(domain.FieldErrors(err)) > 0:
			errs.Add(fmt.Sprintf("items[%d].area", i), "debe ser mayor que 0")
		default:
			errs.Add(fmt.Sprintf("items[%d].product_id", i), "producto inexistente")
		}
	}
	return q, errs
}

// mutate aplica change sobre la versión guardada y persiste el resultado sin soltar mu.
func (uc *QuoteUseCase) mutate(id, msg string, change func(entity.Quote) (entity.Quote, error)) (*dto.QuoteResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	next, err := change(*current)
	if err != nil {
		return nil, err
	}
	return uc.persist(next, msg)
}

func (uc *QuoteUseCase) persist(q entity.Quote, msg string) (*dto.QuoteResponse, error) {
	if err := quote.ValidateForSave(q); err != nil {
		return nil, err
	}
	q = quote.Apply(q)
	q.UpdatedAt = uc.now()
	if err := uc.repo.Update(&q); err != nil {
		return nil, fmt.Errorf("guardar cotización: %w", err)
	}
	uc.saved(q, msg)
	out := ToQuoteResponse(q)
	return &out, nil
}

func (uc *QuoteUseCase) saved(q entity.Quote, msg string) {
	uc.metrics.QuoteSaved()
	uc.log.Info().
		Str("quote_id", q.ID).
		Str("number", q.Number).
		Str("status", q.Status).
		Str("total", q.Total.StringFixed(2)).
		Msg(msg)
}

func (uc *QuoteUseCase) daysOr(days int) int {
	if days > 0 {
		return days
	}
	return uc.validUntilDays
}

// ToQuoteResponse mapea la entidad con fechas en formato DateLayout.
func ToQuoteResponse(q entity.Quote) dto.QuoteResponse {
	items := make([]dto.QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuoteItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Area:         it.Area,
			PricePerUnit: it.PricePerUnit,
			Subtotal:     it.Subtotal(),
		})
	}
	t := quote.Recompute(q)
	return dto.QuoteResponse{
		ID:            q.ID,
		Number:        q.Number,
		ClientName:    q.ClientName,
		ClientEmail:   q.ClientEmail,
		ClientPhone:   q.ClientPhone,
		ClientAddress: q.ClientAddress,
		ProjectType:   q.ProjectType,
		Items:         items,
		QuoteTotalsResponse: dto.QuoteTotalsResponse{
			Subtotal: t.Subtotal,
			Tax:      t.Tax,
			Discount: t.Discount,
			Total:    t.Total,
		},
		Status:      q.Status,
		CreatedDate: formatDate(q.CreatedDate),
		ValidUntil:  formatDate(q.ValidUntil),
		Notes:       q.Notes,
		CreatedBy:   q.CreatedBy,
		UpdatedAt:   q.UpdatedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}
