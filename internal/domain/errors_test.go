package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/domain"
)

func TestValidationErrors_AgregaYEnvuelve(t *testing.T) {
	var errs domain.ValidationErrors
	assert.NoError(t, errs.Err(), "sin fallos no debe haber error")

	errs.Add("client_name", "requerido")
	errs.Add("items", "al menos un ítem")
	err := fmt.Errorf("guardar cotización: %w", errs.Err())

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	fields := domain.FieldErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "client_name", fields[0].Field)
	assert.Equal(t, "items", fields[1].Field)
}

func TestFieldErrors_ErrorIndividual(t *testing.T) {
	err := domain.NewValidationError("area", "debe ser mayor que 0")
	fields := domain.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "area", fields[0].Field)
	assert.Nil(t, domain.FieldErrors(domain.ErrNotFound))
}

func TestTaxonomia_Sentinels(t *testing.T) {
	assert.ErrorIs(t, domain.NewNotFound("producto", "99"), domain.ErrNotFound)
	assert.ErrorIs(t, domain.AuthError{Reason: domain.AuthBadPassword}, domain.ErrUnauthorized)
	assert.ErrorIs(t, domain.ConflictError{Entity: "reserva", ID: "RSV-001", State: "completed"}, domain.ErrConflict)
}
