package latency_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/newtop/marmoleria-api/pkg/latency"
)

func TestWait_Completa(t *testing.T) {
	assert.NoError(t, latency.Wait(context.Background(), time.Millisecond))
	assert.NoError(t, latency.Wait(context.Background(), 0))
}

func TestWait_Cancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	err := latency.Wait(ctx, 5*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWait_ContextoYaCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, latency.Wait(ctx, 0), context.Canceled)
}
