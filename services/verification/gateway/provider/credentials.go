package provider

import (
	"context"
	"sync"
	"time"
)

// authenticateFunc exchanges configured credentials for a fresh token.
type authenticateFunc func(ctx context.Context) (string, error)

// CredentialCache holds one provider access token with an expiry set
// conservatively below the provider's stated validity. Refresh is lazy; the
// mutex collapses concurrent callers into a single outstanding authenticate
// call.
type CredentialCache struct {
	mu           sync.Mutex
	token        string
	expiresAt    time.Time
	ttl          time.Duration
	authenticate authenticateFunc
	now          func() time.Time
}

// NewCredentialCache creates a new credential cache
func NewCredentialCache(ttl time.Duration, authenticate authenticateFunc) *CredentialCache {
	return &CredentialCache{
		ttl:          ttl,
		authenticate: authenticate,
		now:          time.Now,
	}
}

// GetToken returns the cached token if unexpired, otherwise authenticates
// and replaces it.
func (c *CredentialCache) GetToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = c.now().Add(c.ttl)
	return c.token, nil
}

// Invalidate drops the cached token so the next call re-authenticates.
func (c *CredentialCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}
