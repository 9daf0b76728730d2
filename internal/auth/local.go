package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the JWT payload issued by the local auth service.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// LocalVerifier validates HS256 tokens issued by this server's own auth
// endpoints. No network calls, so no cache.
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier creates a verifier for the given signing secret.
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token. Any validation failure resolves to
// anonymous rather than an error.
func (v *LocalVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return nil, nil
	}
	return &Identity{ID: claims.UserID, Email: claims.Email}, nil
}
