package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/recipebook/pkg/jwtx"
)

// ErrInvalidToken is returned for any token that fails verification. An
// expired token and a tampered one are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid_token")

// TokenService issues and verifies the two token kinds. It is stateless:
// a token is a pure function of (claims, shared secret) and verification is
// a pure function of (token, shared secret, current time). Nothing is
// recorded server-side, which also means nothing can be revoked early.
type TokenService struct {
	Tokens     *jwtx.HS256
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Clock is a test hook; nil means time.Now.
	Clock func() time.Time
}

// IssueAccessToken mints a short-lived access token for the user.
func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	return s.Tokens.Sign(jwtx.NewClaims(userID, s.Issuer, s.AccessTTL, s.now()))
}

// IssueRefreshToken mints a refresh token for the user. Refresh tokens are
// never rotated or invalidated; one stays valid for its full window even
// after being used.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	return s.Tokens.Sign(jwtx.NewClaims(userID, s.Issuer, s.RefreshTTL, s.now()))
}

// Verify checks a token of either kind and returns the user id it was
// issued for.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *TokenService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
