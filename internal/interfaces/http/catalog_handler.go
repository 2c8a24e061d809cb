package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/catalog"
	"github.com/newtop/marmoleria-api/internal/application/dto"
)

// CatalogHandler catálogo público y solicitudes de cotización.
type CatalogHandler struct {
	uc       *catalog.CatalogUseCase
	requests *catalog.QuoteRequestUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase, requests *catalog.QuoteRequestUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc, requests: requests}
}

// List godoc
// @Summary      Catálogo de materiales
// @Description  Búsqueda sin distinguir mayúsculas ni acentos sobre nombre, tipo, descripción y aplicación.
// @Tags         catalog
// @Produce      json
// @Param        search    query  string  false  "texto a buscar"
// @Param        category  query  string  false  "All o un tipo de material"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de material
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "id del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubmitQuoteRequest godoc
// @Summary      Solicitar cotización (formulario público)
// @Description  Valida por campo y calcula el costo estimado redondeado. Si el cliente cancela durante la espera no se guarda.
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublicQuoteRequest  true  "producto, área y datos de contacto"
// @Success      201  {object}  dto.PublicQuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote-requests [post]
func (h *CatalogHandler) SubmitQuoteRequest(c *fiber.Ctx) error {
	var in dto.PublicQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.requests.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListQuoteRequests godoc
// @Summary      Solicitudes de cotización recibidas
// @Tags         quote-requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PublicQuoteListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/quote-requests [get]
func (h *CatalogHandler) ListQuoteRequests(c *fiber.Ctx) error {
	out, err := h.requests.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
