// Package reservations panel de reservas de clientes (solo administradores).
package reservations

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	"github.com/newtop/marmoleria-api/internal/domain/search"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// Pestañas del listado además de los estados exactos.
const (
	TabAll    = "all"
	TabActive = "active"
)

var statuses = []string{
	entity.ReservationPending,
	entity.ReservationConfirmed,
	entity.ReservationInProgress,
	entity.ReservationCompleted,
	entity.ReservationCancelled,
}

// ReservationUseCase listado, estadísticas y cancelación.
type ReservationUseCase struct {
	repo repository.ReservationRepository
	log  *logger.Logger
}

func NewReservationUseCase(repo repository.ReservationRepository, log *logger.Logger) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, log: log}
}

// List busca en cliente, email, id y producto; la pestaña filtra por estado.
func (uc *ReservationUseCase) List(in dto.ReservationListQuery) (*dto.ReservationListResponse, error) {
	tab := strings.ToLower(strings.TrimSpace(in.Tab))
	if tab == "" {
		tab = TabAll
	}
	if tab != TabAll && tab != TabActive && !slices.Contains(statuses, tab) {
		return nil, domain.NewValidationError("tab", "pestaña desconocida")
	}
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar reservas: %w", err)
	}
	m := search.NewMatcher(in.Search)
	out := &dto.ReservationListResponse{Items: make([]dto.ReservationResponse, 0, len(all))}
	for _, r := range all {
		if !inTab(r, tab) || !m.Any(r.ClientName, r.ClientEmail, r.ID, r.ProductName) {
			continue
		}
		out.Items = append(out.Items, toResponse(r))
	}
	out.Total = len(out.Items)
	return out, nil
}

func inTab(r entity.Reservation, tab string) bool {
	switch tab {
	case TabAll:
		return true
	case TabActive:
		return r.IsActive()
	default:
		return r.Status == tab
	}
}

// Stats ingresos = suma de TotalPrice de las completadas.
func (uc *ReservationUseCase) Stats() (*dto.ReservationStatsResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar reservas: %w", err)
	}
	s := &dto.ReservationStatsResponse{Total: len(all), Revenue: decimal.Zero}
	for _, r := range all {
		switch {
		case r.IsActive():
			s.Active++
		case r.Status == entity.ReservationCompleted:
			s.Completed++
			s.Revenue = s.Revenue.Add(r.TotalPrice)
		case r.Status == entity.ReservationCancelled:
			s.Cancelled++
		}
	}
	return s, nil
}

// Cancel pasa a cancelada. Completadas y ya canceladas devuelven ConflictError.
func (uc *ReservationUseCase) Cancel(id string) (*dto.ReservationResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener reserva: %w", err)
	}
	if r == nil {
		return nil, domain.NewNotFound("reserva", id)
	}
	if r.Status == entity.ReservationCompleted || r.Status == entity.ReservationCancelled {
		return nil, domain.ConflictError{Entity: "reserva", ID: id, State: r.Status}
	}
	r.Status = entity.ReservationCancelled
	if err := uc.repo.Update(r); err != nil {
		return nil, fmt.Errorf("cancelar reserva: %w", err)
	}
	uc.log.Info().Str("reservation_id", id).Msg("reserva cancelada")
	out := toResponse(*r)
	return &out, nil
}

func toResponse(r entity.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:               r.ID,
		ClientName:       r.ClientName,
		ClientEmail:      r.ClientEmail,
		ClientPhone:      r.ClientPhone,
		ProductName:      r.ProductName,
		ProductType:      r.ProductType,
		Quantity:         r.Quantity,
		TotalPrice:       r.TotalPrice,
		ReservationDate:  r.ReservationDate.Format(dto.DateLayout),
		InstallationDate: r.InstallationDate.Format(dto.DateLayout),
		Status:           r.Status,
		Notes:            r.Notes,
	}
}
