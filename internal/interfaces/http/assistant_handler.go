package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/assistant"
	"github.com/newtop/marmoleria-api/internal/application/dto"
)

// AssistantHandler asesor de materiales público.
type AssistantHandler struct {
	uc *assistant.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Suggest godoc
// @Summary      Sugerir materiales para un proyecto
// @Description  Usa Anthropic si hay API key (timeout de 10 s); si no, o si falla, coincidencia por palabras clave
//               sobre el catálogo. source indica qué camino respondió.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuggestionRequest  true  "descripción libre del proyecto"
// @Success      200   {object}  dto.SuggestionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/suggestions [post]
func (h *AssistantHandler) Suggest(c *fiber.Ctx) error {
	var in dto.SuggestionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Suggest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
