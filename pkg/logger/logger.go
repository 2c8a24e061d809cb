// Package logger registro estructurado de la API sobre zerolog.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config entorno, nivel y destino del registro.
type Config struct {
	Env     string    // "development" escribe en consola con colores; el resto, JSON por línea
	Level   string    // nivel mínimo; vacío o desconocido = info
	Service string    // valor del campo service en cada evento
	Output  io.Writer // nil = os.Stdout
}

// Logger eventos con marca de tiempo y campos fijos por componente.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger raíz y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(levelOf(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func levelOf(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Named sublogger de un componente (auth, quotes, scheduler...).
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal registra y termina el proceso al llamar Msg.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
