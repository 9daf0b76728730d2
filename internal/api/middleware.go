package api

import (
	"net/http"
	"strings"

	"github.com/VoloBuilds/super-coach-pro/internal/auth"
	"github.com/gin-gonic/gin"
)

const contextIdentityKey = "identity"

// errorBody is the error envelope every failure response uses.
type errorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// abortWithError writes the {"error":{"message":...}} envelope and stops the
// handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": errorBody{Message: message}})
}

// ResolveIdentity resolves the bearer token to an identity without aborting:
// a missing or invalid token just leaves the request anonymous, and handlers
// that need a user reject it themselves. Verifier failures (identity service
// down) also resolve to anonymous rather than failing the request.
func ResolveIdentity(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err == nil && identity != nil {
			c.Set(contextIdentityKey, identity)
		}
		c.Next()
	}
}

// currentIdentity returns the resolved identity, or nil for an anonymous
// request.
func currentIdentity(c *gin.Context) *auth.Identity {
	raw, exists := c.Get(contextIdentityKey)
	if !exists {
		return nil
	}
	identity, ok := raw.(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}

// requireIdentity returns the resolved identity or rejects the request with
// 401. Callers must return immediately when ok is false.
func requireIdentity(c *gin.Context) (*auth.Identity, bool) {
	identity := currentIdentity(c)
	if identity == nil {
		abortWithError(c, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return identity, true
}
