package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestContext asigna a cada petición un contexto hijo de base con plazo timeout y lo cancela
// al terminar el handler. Las esperas simuladas de los casos de uso lo observan vía c.UserContext(),
// así una petición que vence el plazo o llega durante el apagado no persiste nada.
// base nil equivale a context.Background(); timeout <= 0 deja la petición sin plazo.
func RequestContext(base context.Context, timeout time.Duration) fiber.Handler {
	if base == nil {
		base = context.Background()
	}
	return func(c *fiber.Ctx) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(base, timeout)
		} else {
			ctx, cancel = context.WithCancel(base)
		}
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
