// Package scheduler tareas periódicas del back-office.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/newtop/marmoleria-api/pkg/logger"
)

const jobTimeout = time.Minute

// QuoteExpirer marca como vencidas las cotizaciones cuya vigencia pasó.
type QuoteExpirer interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

// Scheduler ejecuta la expiración de cotizaciones según una expresión cron de 5 campos.
type Scheduler struct {
	cron    *cron.Cron
	expirer QuoteExpirer
	spec    string
	log     *logger.Logger
	now     func() time.Time
}

// New no arranca nada; ver Start.
func New(spec string, expirer QuoteExpirer, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:    cron.New(),
		expirer: expirer,
		spec:    spec,
		log:     log.Named("scheduler"),
		now:     time.Now,
	}
}

// Start registra el job y arranca el cron. Una expresión inválida es error.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("programar expiración %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("cron", s.spec).Msg("scheduler iniciado")
	return nil
}

// Stop espera a que termine el job en curso o a que venza ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler detenido con un job en curso")
	}
}

// RunOnce una pasada de expiración con timeout propio.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	n, err := s.expirer.ExpireOverdue(ctx, s.now())
	if err != nil {
		s.log.Error().Err(err).Int("expired", n).Msg("expiración de cotizaciones fallida")
		return n
	}
	s.log.Info().Int("expired", n).Msg("expiración de cotizaciones")
	return n
}
