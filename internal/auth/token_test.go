package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	token, err := svc.Issue("user-123")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := NewTokenService("test-secret", WithClock(clock.Now))
	require.NoError(t, err)

	token, err := svc.Issue("user-1")
	require.NoError(t, err)

	clock.t = clock.t.Add(59 * time.Minute)
	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("right-secret")
	require.NoError(t, err)
	verifier, err := NewTokenService("wrong-secret")
	require.NoError(t, err)

	token, err := issuer.Issue("u2")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc, err := NewTokenService("k")
	require.NoError(t, err)

	for _, token := range []string{"", "not.a.jwt", "clearly-not-a-jwt"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewTokenService("k")
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "u3",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RequiresUserID(t *testing.T) {
	svc, err := NewTokenService("k")
	require.NoError(t, err)

	_, err = svc.Issue("")
	assert.Error(t, err)

	// a validly signed token without the user claim is still rejected
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	svc, err := NewTokenService("  ")
	assert.Error(t, err)
	assert.Nil(t, svc)
}
