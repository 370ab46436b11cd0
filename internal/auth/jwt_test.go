package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Generate(42)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate(42)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_Expired(t *testing.T) {
	token, err := NewTokenManager("secret", -time.Minute).Generate(42)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", -time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).Validate("not.a.token")
	assert.Error(t, err)
}
