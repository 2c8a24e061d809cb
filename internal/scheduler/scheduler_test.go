package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/scheduler"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

type fakeExpirer struct {
	n     int
	err   error
	calls int
}

func (f *fakeExpirer) ExpireOverdue(ctx context.Context, _ time.Time) (int, error) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("sin deadline")
	}
	return f.n, f.err
}

func TestRunOnce_DevuelveExpiradas(t *testing.T) {
	f := &fakeExpirer{n: 2}
	s := scheduler.New("0 3 * * *", f, logger.Nop())
	assert.Equal(t, 2, s.RunOnce(context.Background()))
	assert.Equal(t, 1, f.calls)
}

func TestRunOnce_ErrorNoEntraEnPanico(t *testing.T) {
	f := &fakeExpirer{n: 1, err: errors.New("db caída")}
	s := scheduler.New("0 3 * * *", f, nil)
	assert.Equal(t, 1, s.RunOnce(context.Background()))
}

func TestStart_ExpresionInvalida(t *testing.T) {
	s := scheduler.New("no es cron", &fakeExpirer{}, logger.Nop())
	assert.Error(t, s.Start())
}

func TestStartStop(t *testing.T) {
	s := scheduler.New("@every 1h", &fakeExpirer{}, logger.Nop())
	require.NoError(t, s.Start())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
