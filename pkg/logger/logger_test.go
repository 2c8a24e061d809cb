package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/pkg/logger"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "newtop-api", Output: &buf})

	log.Named("quotes").Info().Str("number", "COT-2026-001").Msg("cotización creada")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "newtop-api", ev["service"])
	assert.Equal(t, "quotes", ev["component"])
	assert.Equal(t, "COT-2026-001", ev["number"])
	assert.Equal(t, "info", ev["level"])
	assert.Contains(t, ev, "time")
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "warn", Output: &buf})

	log.Info().Msg("no aparece")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("aparece")
	assert.Contains(t, buf.String(), "aparece")
}

func TestNew_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verbose", Output: &buf})

	log.Debug().Msg("debug")
	assert.Zero(t, buf.Len())
	log.Info().Msg("info")
	assert.NotZero(t, buf.Len())
}
