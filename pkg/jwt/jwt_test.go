package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateYParse(t *testing.T) {
	m, err := NewManager("secret", "test", 60)
	require.NoError(t, err)

	tok, err := m.Generate("u1", "manager")
	require.NoError(t, err)

	userID, role, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "manager", role)
}

func TestManager_SecretVacio(t *testing.T) {
	_, err := NewManager("", "test", 60)
	assert.Error(t, err)
}

func TestManager_FirmaIncorrecta(t *testing.T) {
	m1, err := NewManager("secret-1", "test", 60)
	require.NoError(t, err)
	m2, err := NewManager("secret-2", "test", 60)
	require.NoError(t, err)

	tok, err := m1.Generate("u1", "admin")
	require.NoError(t, err)

	_, _, err = m2.Parse(tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestManager_TokenExpirado(t *testing.T) {
	m, err := NewManager("secret", "test", -1) // ya expirado al emitir
	require.NoError(t, err)

	tok, err := m.Generate("u1", "staff")
	require.NoError(t, err)

	_, _, err = m.Parse(tok)
	assert.Error(t, err)
}
