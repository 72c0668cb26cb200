package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "recipebook-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := NewHS256(nil, testIssuer)
		require.Error(t, err)
	})

	t.Run("accepts non-empty secret", func(t *testing.T) {
		h, err := NewHS256(testSecret, testIssuer)
		require.NoError(t, err)
		require.NotNil(t, h)
	})
}

func TestHS256_SignVerifyRoundTrip(t *testing.T) {
	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	now := time.Now()
	token, err := h.Sign(NewClaims("user-123", testIssuer, DefaultAccessTokenTTL, now))
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWT has three segments")

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.WithinDuration(t, now.Add(DefaultAccessTokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestHS256_VerifyFailures(t *testing.T) {
	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	now := time.Now()

	t.Run("garbage token", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewHS256([]byte("a completely different secret!!!"), testIssuer)
		require.NoError(t, err)

		token, err := other.Sign(NewClaims("user-123", testIssuer, time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := h.Sign(NewClaims("user-123", "someone-else", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := h.Sign(NewClaims("", testIssuer, time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, NewClaims("user-123", testIssuer, time.Hour, now))
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHS256_ExpiryBoundaries(t *testing.T) {
	issued := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	access, err := h.Sign(NewClaims("u1", testIssuer, DefaultAccessTokenTTL, issued))
	require.NoError(t, err)
	refresh, err := h.Sign(NewClaims("u1", testIssuer, DefaultRefreshTokenTTL, issued))
	require.NoError(t, err)

	at := func(t time.Time) *HS256 {
		return h.WithClock(func() time.Time { return t })
	}

	t.Run("access token valid strictly before one hour", func(t *testing.T) {
		_, err := at(issued.Add(59 * time.Minute)).Verify(access)
		require.NoError(t, err)
	})

	t.Run("access token rejected after one hour", func(t *testing.T) {
		_, err := at(issued.Add(time.Hour + time.Minute)).Verify(access)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token valid strictly before seven days", func(t *testing.T) {
		_, err := at(issued.Add(7*24*time.Hour - time.Minute)).Verify(refresh)
		require.NoError(t, err)
	})

	t.Run("refresh token rejected after seven days", func(t *testing.T) {
		_, err := at(issued.Add(7*24*time.Hour + time.Minute)).Verify(refresh)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
