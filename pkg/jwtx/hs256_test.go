package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	h, err := NewHS256("s3cret", "courseware", []string{"forumroles"})
	require.NoError(t, err)

	claims := NewClaims("staff-1", "courseware", []string{"forumroles"}, []string{ScopeForumAdmin}, time.Minute, time.Now())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "staff-1", got.Subject)
	require.True(t, got.HasScope(ScopeForumAdmin))
	require.False(t, got.HasScope(ScopeForumRead))
}

func TestHS256RejectsBadTokens(t *testing.T) {
	h, err := NewHS256("s3cret", "courseware", []string{"forumroles"})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewHS256("other", "", nil)
		require.NoError(t, err)
		token, err := other.Sign(NewClaims("x", "courseware", []string{"forumroles"}, nil, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := h.Sign(NewClaims("x", "elsewhere", []string{"forumroles"}, nil, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := h.Sign(NewClaims("x", "courseware", []string{"billing"}, nil, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := h.Sign(NewClaims("x", "courseware", []string{"forumroles"}, nil, time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("no expiry", func(t *testing.T) {
		claims := NewClaims("x", "courseware", []string{"forumroles"}, []string{ScopeForumAdmin}, time.Minute, time.Now())
		claims.ExpiresAt = nil
		token, err := h.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestValidateExpiryRequiresExp(t *testing.T) {
	claims := NewClaims("x", "", nil, nil, time.Minute, time.Now())
	require.NoError(t, claims.ValidateExpiry())

	claims.ExpiresAt = nil
	require.ErrorIs(t, claims.ValidateExpiry(), ErrNoExpiry)
}

func TestNewHS256RequiresSecret(t *testing.T) {
	_, err := NewHS256("", "", nil)
	require.ErrorIs(t, err, ErrNoSecret)
}
