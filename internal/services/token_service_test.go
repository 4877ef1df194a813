package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 30*24*time.Hour)
	now := time.Now()

	token, err := svc.Issue("alice", now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// still valid one second before expiry
	subject, err = svc.Verify(token, now.Add(30*24*time.Hour-time.Second))
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	now := time.Now()

	token, err := svc.Issue("alice", now)
	require.NoError(t, err)

	_, err = svc.Verify(token, now.Add(time.Hour+time.Second))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	now := time.Now()
	token, err := NewTokenService("secret-a", time.Hour).Issue("alice", now)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(token, now)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok, time.Now())
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestTokenService_RejectsNonHMAC(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	// alg=none is never accepted
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tok, time.Now())
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	now := time.Now()

	token, err := svc.Issue("", now)
	require.NoError(t, err)

	_, err = svc.Verify(token, now)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
