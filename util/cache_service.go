// util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dev-mohitbeniwal/idconsole/db"
	"github.com/dev-mohitbeniwal/idconsole/management"
)

// CacheService keeps the Management API service token in Redis, encrypted,
// so every replica of the console shares one token per tenant.
type CacheService struct {
	tenant string
	now    func() time.Time
}

var _ management.TokenCache = (*CacheService)(nil)

func NewCacheService(tenant string) *CacheService {
	return &CacheService{tenant: tenant, now: time.Now}
}

func (c *CacheService) key() string {
	return fmt.Sprintf("auth0-mgmt-token:%s", c.tenant)
}

func (c *CacheService) Load(ctx context.Context) (*management.ServiceToken, error) {
	raw, err := db.LoadSecret(ctx, c.key())
	if err != nil || raw == nil {
		return nil, err
	}
	var token management.ServiceToken
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service token: %w", err)
	}
	return &token, nil
}

// Store replaces the cached token. The entry expires with the token.
func (c *CacheService) Store(ctx context.Context, token *management.ServiceToken) error {
	ttl := token.ExpiresAt.Sub(c.now())
	if ttl <= 0 {
		return db.DeleteSecret(ctx, c.key())
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal service token: %w", err)
	}
	return db.StoreSecret(ctx, c.key(), raw, ttl)
}
