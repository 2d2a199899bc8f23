// Package token implements the signed-claims codec and the issuer for the
// three token kinds the API hands out: access, refresh, and email
// confirmation. Tokens are self-contained HS256 JWTs; possession plus
// validity is the sole proof of authenticity, there is no server-side
// registry and no early revocation.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// Scope discriminates what a token is good for. Every decode site states the
// scope it expects, so a refresh token can never pass the access gate.
type Scope string

const (
	ScopeAccess       Scope = "access"
	ScopeRefresh      Scope = "refresh"
	ScopeEmailConfirm Scope = "email_confirm"
)

// Claims is the single claim shape shared by all token kinds. Subject is the
// user's email.
type Claims struct {
	jwt.RegisteredClaims
	Scope Scope `json:"scope"`
}

// Codec signs and verifies claim sets with one process-wide shared secret.
// The secret is injected once at construction; rotating it invalidates every
// outstanding token.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes and signs {subject, scope, expiry}.
func (c *Codec) Encode(email string, scope Scope, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope: scope,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature, the expiry, and that the token carries the
// expected scope and a subject. Every failure collapses to
// domain.ErrInvalidToken so the response never leaks which check failed.
func (c *Codec) Decode(raw string, scope Scope) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Scope != scope || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
