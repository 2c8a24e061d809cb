package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/quotes"
)

// QuoteHandler cotizaciones del back-office: CRUD, líneas, estado y exportación.
type QuoteHandler struct {
	uc     *quotes.QuoteUseCase
	export *quotes.ExportUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *quotes.QuoteUseCase, export *quotes.ExportUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar cotizaciones
// @Description  Más recientes primero. stats se calcula sobre todas, sin filtro.
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "folio, cliente o email"
// @Param        status  query  string  false  "todas, borrador, enviada, aceptada, rechazada, expirada"
// @Success      200  {object}  dto.QuoteListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var q dto.QuoteListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de cotización
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cotización
// @Description  Asigna folio COT-<año>-NNN y vigencia. Precios tomados del catálogo actual.
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveQuoteRequest  true  "cliente, líneas, descuento"
// @Success      201  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(author(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cotización
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "id"
// @Param        body  body  dto.SaveQuoteRequest  true  "cliente, líneas, descuento"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [put]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cotización
// @Tags         quotes
// @Security     Bearer
// @Param        id  path  string  true  "id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Preview godoc
// @Summary      Calcular totales sin guardar
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveQuoteRequest  true  "líneas y descuento"
// @Success      200  {object}  dto.QuotePreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quotes/preview [post]
func (h *QuoteHandler) Preview(c *fiber.Ctx) error {
	var in dto.SaveQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Preview(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "id"
// @Param        body  body  dto.QuoteStatusRequest  true  "nuevo estado"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/status [patch]
func (h *QuoteHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.QuoteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar línea
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "id"
// @Param        body  body  dto.QuoteItemRequest  true  "producto y área"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.QuoteItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddItem(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Cambiar área de una línea
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string                    true  "id"
// @Param        itemId  path  string                    true  "id de la línea"
// @Param        body    body  dto.QuoteItemAreaRequest  true  "área en m²"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items/{itemId} [put]
func (h *QuoteHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.QuoteItemAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateItemArea(c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar línea
// @Description  Una cotización guardada no puede quedar sin líneas.
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "id"
// @Param        itemId  path  string  true  "id de la línea"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items/{itemId} [delete]
func (h *QuoteHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Params("id"), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Expire godoc
// @Summary      Ejecutar ahora la expiración de cotizaciones vencidas
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QuoteExpiryResponse
// @Router       /api/quotes/expire [post]
func (h *QuoteHandler) Expire(c *fiber.Ctx) error {
	n, err := h.uc.ExpireOverdue(c.UserContext(), time.Now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.QuoteExpiryResponse{Expired: n})
}

// ExportPDF godoc
// @Summary      Descargar cotización en PDF
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/export/pdf [get]
func (h *QuoteHandler) ExportPDF(c *fiber.Ctx) error {
	b, name, err := h.export.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(b)
}

// ExportCSV godoc
// @Summary      Descargar cotización en CSV
// @Tags         quotes
// @Security     Bearer
// @Produce      text/csv
// @Param        id  path  string  true  "id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/export/csv [get]
func (h *QuoteHandler) ExportCSV(c *fiber.Ctx) error {
	b, name, err := h.export.CSV(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(b)
}

// author nombre del vendedor de la sesión; el email si no tiene nombre.
func author(c *fiber.Ctx) string {
	s := GetSession(c)
	if s == nil {
		return ""
	}
	if s.User.Name != "" {
		return s.User.Name
	}
	return s.User.Email
}
