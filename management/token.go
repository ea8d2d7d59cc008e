package management

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

// RefreshMargin is how long before expiry a cached service token stops being
// handed out.
const RefreshMargin = 60 * time.Second

// ServiceToken is a client-credentials access token and its absolute expiry.
type ServiceToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Fresh reports whether the token may still be used at now.
func (t *ServiceToken) Fresh(now time.Time) bool {
	return t != nil && t.AccessToken != "" && now.Before(t.ExpiresAt.Add(-RefreshMargin))
}

// TokenCache holds the gateway's current service token. Store replaces the
// whole entry; implementations never merge.
type TokenCache interface {
	Load(ctx context.Context) (*ServiceToken, error)
	Store(ctx context.Context, token *ServiceToken) error
}

// MemoryTokenCache keeps the token in process.
type MemoryTokenCache struct {
	slot *atomic.Pointer[ServiceToken]
}

var _ TokenCache = (*MemoryTokenCache)(nil)

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{slot: atomic.NewPointer[ServiceToken](nil)}
}

func (c *MemoryTokenCache) Load(context.Context) (*ServiceToken, error) {
	return c.slot.Load(), nil
}

func (c *MemoryTokenCache) Store(_ context.Context, token *ServiceToken) error {
	c.slot.Store(token)
	return nil
}
