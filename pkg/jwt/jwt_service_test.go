package jwt

import (
	"Nutriplan-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewJWTService("secret")

	token := s.GenerateTokenUser("4b4a3f0e-4c77-4c3b-a1f7-1d0e2f3a4b5c", domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := s.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "4b4a3f0e-4c77-4c3b-a1f7-1d0e2f3a4b5c", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestTokenWrongSecret(t *testing.T) {
	token := NewJWTService("secret").GenerateTokenUser("u1", domain.RoleUser)

	_, _, err := NewJWTService("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = NewJWTService("secret").GetUserIDByToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	s := NewJWTService("secret").(*jwtService)
	s.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	token := s.GenerateTokenUser("u1", domain.RoleUser)

	_, _, err := NewJWTService("secret").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
