package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/auth"
	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/navigation"
)

// LocalSession clave de c.Locals con la *entity.Session autenticada.
const LocalSession = "session"

// Authenticator valida un token contra la sesión viva. Lo implementa *auth.Gate.
type Authenticator interface {
	Authenticate(token string) (*entity.Session, error)
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// AuthMiddleware exige un Bearer Token de la sesión viva y la deja en c.Locals.
func AuthMiddleware(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "Authorization header requerido", RedirectTo: navigation.RouteLogin,
			})
		}
		tok, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_TOKEN", Message: "formato: Bearer <token>", RedirectTo: navigation.RouteLogin,
			})
		}
		s, err := a.Authenticate(tok)
		if err != nil {
			code := "INVALID_TOKEN"
			if errors.Is(err, domain.ErrSessionExpired) {
				code = "SESSION_EXPIRED"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: code, Message: "token inválido o expirado", RedirectTo: navigation.RouteLogin,
			})
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// OptionalAuth carga la sesión si el token es válido; si falta o no vale, la petición sigue como anónima.
func OptionalAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok, ok := bearerToken(c); ok {
			if s, err := a.Authenticate(tok); err == nil {
				c.Locals(LocalSession, s)
			}
		}
		return c.Next()
	}
}

// RequireRoute aplica la guardia de navegación de la ruta del sitio que respalda el grupo.
// Anónimo: 401 con redirect_to=/login?from=<route>. Cliente en ruta de admin: 403 con redirect_to=/.
func RequireRoute(route string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := navigation.Decide(auth.StateOf(GetSession(c)), route)
		switch d.Outcome {
		case navigation.RedirectLogin:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "inicie sesión para continuar", RedirectTo: d.RedirectTo,
			})
		case navigation.RedirectHome:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "requiere rol vendedor", RedirectTo: d.RedirectTo,
			})
		}
		return c.Next()
	}
}

// GetSession sesión del contexto; nil si la petición es anónima.
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetUserID id del usuario autenticado o "".
func GetUserID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.User.ID
	}
	return ""
}
