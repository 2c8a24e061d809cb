package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/auth"
	"github.com/newtop/marmoleria-api/internal/application/dto"
)

// AuthHandler login, registro, logout y sesión actual.
type AuthHandler struct {
	gate *auth.Gate
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password (mín. 8), name"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.gate.Register(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Una sola sesión viva: un login exitoso reemplaza la anterior. redirect_to es `from` si el rol puede verla.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, from"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.gate.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sin sesión"})
	}
	if err := h.gate.Logout(c.UserContext(), s.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Sesión actual
// @Description  Sin token o con token inválido responde state=anonymous.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(auth.Describe(GetSession(c)))
}
