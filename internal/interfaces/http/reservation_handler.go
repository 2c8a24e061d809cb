package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/reservations"
)

// ReservationHandler reservas de clientes (solo vendedor).
type ReservationHandler struct {
	uc *reservations.ReservationUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *reservations.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// List godoc
// @Summary      Listar reservas
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "cliente, email, id o producto"
// @Param        tab     query  string  false  "all, active o un estado"
// @Success      200  {object}  dto.ReservationListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reservations [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	var q dto.ReservationListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Totales de reservas
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReservationStatsResponse
// @Router       /api/reservations/stats [get]
func (h *ReservationHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "RSV-NNN"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
