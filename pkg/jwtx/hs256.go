package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign token claims.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// ErrInvalidToken covers every verification failure: bad signature, malformed
// payload, wrong algorithm, expiry. Callers must not be able to tell an
// expired token from a tampered one.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// HS256 signs and verifies tokens with a single shared secret. There is no
// key rotation and no server-side state; a token is valid iff its signature
// matches and its expiry has not passed.
type HS256 struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewHS256 creates a shared-secret signer/verifier. The clock defaults to
// time.Now and is only overridable for tests.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HS256{secret: secret, issuer: issuer, now: time.Now}, nil
}

// WithClock returns a copy of h that reads time from now. Test hook.
func (h *HS256) WithClock(now func() time.Time) *HS256 {
	return &HS256{secret: h.secret, issuer: h.issuer, now: now}
}

// Sign takes your claims and turns them into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// Verify validates the token string and returns its parsed Claims.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(h.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return *claims, nil
}
