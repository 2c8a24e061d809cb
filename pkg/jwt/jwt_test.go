package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/newtop/marmoleria-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "newtop-test"
)

func testSubject() pkgjwt.Subject {
	return pkgjwt.Subject{UserID: "u-1", SessionID: "s-1", Role: "vendedor"}
}

func TestGenerateAndParse_ConservaClaims(t *testing.T) {
	now := time.Now()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testSubject(), now, now.Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "s-1", claims.SessionID())
	assert.Equal(t, "vendedor", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	now := time.Now()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testSubject(), now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	now := time.Now()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testSubject(), now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, testSubject(), time.Now(), time.Now().Add(time.Minute))
	assert.Error(t, err)
}
