// Package latency demoras simuladas que respetan la cancelación del contexto.
package latency

import (
	"context"
	"time"
)

// Wait espera d o hasta que ctx termine. Devuelve ctx.Err() si se canceló antes.
func Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
