package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{}

func (fixedUUID) Generate() string { return "token-id-1" }

func testConfig(now time.Time) Config {
	return Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "goblast",
		Audiences: []string{"goblast-web"},
		TTL:       time.Hour,
		Clock:     fixedClock{now: now},
		UUID:      fixedUUID{},
	}
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestGenerateVerifyRoundtrip(t *testing.T) {
	j, err := NewHS512(testConfig(time.Now()))
	require.NoError(t, err)

	token, err := j.Generate(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.UserEmail)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "goblast", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	j, err := NewHS512(testConfig(time.Now().Add(-2 * time.Hour)))
	require.NoError(t, err)

	token, err := j.Generate(42, "user@example.com")
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	j, err := NewHS512(testConfig(time.Now()))
	require.NoError(t, err)

	token, err := j.Generate(42, "user@example.com")
	require.NoError(t, err)

	other := testConfig(time.Now())
	other.Secret = []byte("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210")
	j2, err := NewHS512(other)
	require.NoError(t, err)

	_, err = j2.Verify(token)
	require.Error(t, err)
}

func TestAuthContext(t *testing.T) {
	ctx := SetAuth(t.Context(), Claims{UserID: 7, UserEmail: "a@b.com"})

	clm := GetAuth(ctx)
	require.NotNil(t, clm)
	assert.Equal(t, int64(7), clm.UserID)

	assert.Nil(t, GetAuth(t.Context()))
}
