package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scopes understood by the forum roles API.
const (
	ScopeForumRead  = "forum:read"
	ScopeForumAdmin = "forum:admin"
)

// DefaultTokenTTL is used by NewClaims when ttl is zero.
const DefaultTokenTTL = 15 * time.Minute

// Claims are the access-token claims the API accepts. Tokens are minted by
// whatever issues course staff credentials; only sub and scopes matter here.
type Claims struct {
	jwt.RegisteredClaims

	// Permission scopes, e.g. ["forum:read", "forum:admin"]
	Scopes []string `json:"scopes,omitempty"`
}

// NewClaims builds claims for subject valid from now for ttl.
func NewClaims(subject, issuer string, audience, scopes []string, ttl time.Duration, now time.Time) Claims {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Scopes: scopes,
	}
}

func newJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the claims carry scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer checks the issuer when one is expected.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks that at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry ensures the token carries exp, hasn't expired and isn't used
// before nbf.
func (c *Claims) ValidateExpiry() error {
	if c.ExpiresAt == nil {
		return ErrNoExpiry
	}
	now := time.Now().UTC()
	if now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
