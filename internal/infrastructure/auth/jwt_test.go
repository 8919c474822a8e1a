package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:     "test-secret-0123456789abcdef0123",
		Expiration: time.Hour,
		Issuer:     "aromatta-backend",
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken("1700000000000", "ana@example.com", "seller")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, "aromatta-backend", claims.Issuer)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, err := svc.GenerateToken("u1", "a@b.com", "buyer")
	require.NoError(t, err)

	other := NewJWTService(Config{Secret: "another-secret-another-secret-xx", Expiration: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Expiration = -time.Minute
	svc := NewJWTService(cfg)

	token, err := svc.GenerateToken("u1", "a@b.com", "buyer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(testConfig())
	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
