package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/sync/singleflight"
)

// RemoteVerifier validates tokens against the hosted identity service and
// caches the result per token. Concurrent cache misses for the same token
// share a single outstanding lookup.
type RemoteVerifier struct {
	baseURL string
	apiKey  string
	ttl     time.Duration
	client  *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
	group singleflight.Group
}

type cacheEntry struct {
	identity *Identity
	expires  time.Time
}

// NewRemoteVerifier creates a verifier for the identity service at baseURL.
// Cached entries live for ttl, capped by the token's own expiry when the
// token is a readable JWT.
func NewRemoteVerifier(baseURL, apiKey string, ttl time.Duration) *RemoteVerifier {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RemoteVerifier{
		baseURL: baseURL,
		apiKey:  apiKey,
		ttl:     ttl,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]cacheEntry),
	}
}

// Verify resolves the token, serving from cache when a live entry exists.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	v.mu.Lock()
	if entry, ok := v.cache[token]; ok && time.Now().Before(entry.expires) {
		v.mu.Unlock()
		return entry.identity, nil
	}
	v.mu.Unlock()

	result, err, _ := v.group.Do(token, func() (any, error) {
		identity, err := v.lookup(ctx, token)
		if err != nil {
			return nil, err
		}
		v.mu.Lock()
		v.cache[token] = cacheEntry{identity: identity, expires: v.expiry(token, time.Now())}
		v.mu.Unlock()
		return identity, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Identity), nil
}

// expiry caps the cache window at the token's exp claim when present. The
// claim is read without signature verification; the identity service already
// vouched for the token.
func (v *RemoteVerifier) expiry(token string, now time.Time) time.Time {
	expires := now.Add(v.ttl)
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expires) {
			expires = claims.ExpiresAt.Time
		}
	}
	return expires
}

func (v *RemoteVerifier) lookup(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var identity Identity
		if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
			return nil, err
		}
		return &identity, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Invalid token resolves to anonymous, not an error.
		return nil, nil
	default:
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
}
