// Package auth verifies bearer tokens against a shared signing secret.
// The gateway is stateless: it holds no session store and verification is
// a pure predicate over the token.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingToken is returned when the Authorization header is absent
	// or does not carry a bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when the signature check fails or the
	// token has expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Principal is the decoded identity of a verified token. It lives for the
// duration of one request and is never persisted.
type Principal struct {
	Subject   string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Gateway issues and verifies signed tokens with a process-wide secret.
// Rotating the secret invalidates all previously issued tokens.
type Gateway struct {
	secret []byte
	ttl    time.Duration
}

// NewGateway creates a gateway signing with secret; issued tokens expire
// after ttl.
func NewGateway(secret string, ttl time.Duration) *Gateway {
	return &Gateway{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for subject.
func (g *Gateway) Issue(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(g.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	})
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyHeader extracts the bearer token from an Authorization header
// value and verifies it.
func (g *Gateway) VerifyHeader(header string) (*Principal, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, ErrMissingToken
	}
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return nil, ErrMissingToken
	}
	return g.Verify(strings.TrimSpace(header[len(prefix):]))
}

// Verify checks the token's signature and expiry and returns the decoded
// principal.
func (g *Gateway) Verify(tokenString string) (*Principal, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	p := &Principal{Subject: claims.Subject, TokenID: claims.ID}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}
