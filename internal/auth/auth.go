// Package auth resolves bearer tokens to user identities. Two verifiers
// exist: a remote one backed by the hosted identity service, and a local one
// validating tokens this server issued itself.
package auth

import "context"

// Identity is the authenticated principal attached to a request.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenVerifier resolves a bearer token to an identity. An invalid or
// expired token resolves to (nil, nil): the request proceeds anonymously and
// protected handlers reject it. An error means the verification itself could
// not be performed.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
