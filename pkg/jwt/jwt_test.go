package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := Generate(testSecret, "caja-1", RoleOperator, "pedidos-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "caja-1", claims.Subject)
	assert.Equal(t, RoleOperator, claims.Role)
	assert.Equal(t, "pedidos-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, "caja-1", RoleAdmin, "pedidos-test", -1)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, "caja-1", RoleAdmin, "pedidos-test", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "caja-1", RoleAdmin, "pedidos-test", 60)
	assert.Error(t, err)
}
