package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/auth"
	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/domain/navigation"
)

// NavigationHandler expone la guardia de rutas del sitio y el sitemap.
type NavigationHandler struct {
	sitemap []byte
}

// NewNavigationHandler recibe el sitemap ya generado; las rutas no cambian en ejecución.
func NewNavigationHandler(sitemap []byte) *NavigationHandler {
	return &NavigationHandler{sitemap: sitemap}
}

// Decide godoc
// @Summary      Decisión de la guardia para una ruta del sitio
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  false  "ruta del sitio, p. ej. /inventario"
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Decide(c *fiber.Ctx) error {
	state := auth.StateOf(GetSession(c))
	d := navigation.Decide(state, c.Query("path"))
	return c.JSON(dto.NavigationResponse{
		Path:       d.Path,
		State:      string(state),
		Allowed:    d.Allowed(),
		Outcome:    string(d.Outcome),
		RedirectTo: d.RedirectTo,
	})
}

// Routes godoc
// @Summary      Tabla de rutas del sitio
// @Tags         navigation
// @Produce      json
// @Success      200  {array}  dto.RouteResponse
// @Router       /api/navigation/routes [get]
func (h *NavigationHandler) Routes(c *fiber.Ctx) error {
	out := make([]dto.RouteResponse, 0, len(navigation.Routes))
	for _, r := range navigation.Routes {
		out = append(out, dto.RouteResponse{Path: r.Path, Title: r.Title, AdminOnly: r.Access == navigation.AdminOnly})
	}
	return c.JSON(out)
}

// Sitemap godoc
// @Summary      sitemap.xml de las rutas públicas
// @Tags         navigation
// @Produce      xml
// @Success      200
// @Router       /sitemap.xml [get]
func (h *NavigationHandler) Sitemap(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(h.sitemap)
}
