package v1

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the token payload: an opaque data field plus the
// registered expiry. The data field carries the login password, matching
// the contract this service inherited.
type accessClaims struct {
	Data string `json:"data"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the given payload, expiring ttl from now.
func (t *TokenIssuer) Issue(payload string) (string, error) {
	claims := accessClaims{
		Data: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the token's signature and expiration. Any parse or
// verification failure maps to ErrTokenInvalid.
func (t *TokenIssuer) VerifyToken(tokenString string) error {
	_, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return fmt.Errorf("verify token: %w", ErrTokenInvalid)
	}
	return nil
}
