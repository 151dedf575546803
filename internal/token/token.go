// Package token issues and verifies the stateless bearer tokens carried in
// the Authorization header. Tokens are HS256 JWTs with a fixed "access"
// type claim; there is no revocation, a token stays valid until expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const typeAccess = "access"

// ErrInvalid covers every verification failure: bad signature, expired,
// malformed, or wrong token type. Callers never learn which.
var ErrInvalid = errors.New("invalid or expired token")

// Claims carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// Issuer signs and verifies access tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer from the signing secret and token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs an access token for the given user identifier.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Type: typeAccess,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Verify checks the signature, expiry and type claim, returning the user
// identifier the token was issued for.
func (i *Issuer) Verify(tokenStr string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !tok.Valid {
		return "", ErrInvalid
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.Type != typeAccess || claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
