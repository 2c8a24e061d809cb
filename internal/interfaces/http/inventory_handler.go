package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/inventory"
)

// InventoryHandler tabla de inventario del back-office (solo vendedor).
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func itemID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// View godoc
// @Summary      Vista paginada del inventario
// @Description  Sin estado: filtra, ordena y pagina con los parámetros dados. Página fuera de rango se acota.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "nombre, tipo o ubicación"
// @Param        type    query  string  false  "All o un tipo"
// @Param        sort    query  string  false  "name, type, price, stock, reserved, available"
// @Param        dir     query  string  false  "asc o desc"
// @Param        page    query  int     false  "desde 1"
// @Success      200  {object}  dto.InventoryViewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) View(c *fiber.Ctx) error {
	var q dto.InventoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.View(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CurrentView godoc
// @Summary      Estado compartido de la vista
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryViewResponse
// @Router       /api/inventory/view [get]
func (h *InventoryHandler) CurrentView(c *fiber.Ctx) error {
	out, err := h.uc.CurrentView()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateView godoc
// @Summary      Cambiar búsqueda, tipo, orden o página de la vista compartida
// @Description  Cambiar búsqueda o tipo vuelve a la página 1. toggle_sort sobre la misma columna alterna la dirección.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryViewRequest  true  "cambios de la vista"
// @Success      200  {object}  dto.InventoryViewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/view [patch]
func (h *InventoryHandler) UpdateView(c *fiber.Ctx) error {
	var in dto.InventoryViewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateView(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar producto al inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryItemRequest  true  "producto y existencias"
// @Success      201  {object}  dto.InventoryRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar producto del inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "id"
// @Param        body  body  dto.InventoryItemRequest  true  "producto y existencias"
// @Success      200  {object}  dto.InventoryRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto del inventario
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  int  true  "id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Totales del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Types godoc
// @Summary      Opciones del filtro de tipo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryTypesResponse
// @Router       /api/inventory/types [get]
func (h *InventoryHandler) Types(c *fiber.Ctx) error {
	out, err := h.uc.Types()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
