package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors for token signing and verification.
var (
	// ErrMissingSecret indicates the deployment has no signing secret
	// configured. Surfaced to callers as "Server misconfigured".
	ErrMissingSecret = errors.New("signing secret is not configured")
	// ErrInvalidToken indicates the token failed verification.
	ErrInvalidToken = errors.New("invalid token")
)

// IdentityClaims is the token payload: the subject user id under the
// "id" key. Tokens carry no expiry; possession of a validly signed
// token is the sole proof of identity.
type IdentityClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Signer issues and verifies identity tokens using an HMAC-SHA256
// shared secret.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer. An empty secret is accepted here and
// reported on first use, so a misconfigured deployment still boots
// and answers with the contractual 500.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Ready reports whether a signing secret is configured.
// Signup checks this before touching the store, so a misconfigured
// deployment answers 500 even for duplicate emails.
func (s *Signer) Ready() error {
	if len(s.secret) == 0 {
		return ErrMissingSecret
	}
	return nil
}

// Sign produces a signed token carrying the given user id.
func (s *Signer) Sign(userID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	claims := IdentityClaims{UserID: userID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and returns the embedded user id.
// Any parse or signature failure, a non-HMAC signing method, and an
// empty id claim all yield ErrInvalidToken; the underlying cause is
// wrapped for operator logs.
func (s *Signer) Verify(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
