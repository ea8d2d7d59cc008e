package util_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/idconsole/config"
	"github.com/dev-mohitbeniwal/idconsole/db"
	"github.com/dev-mohitbeniwal/idconsole/management"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

const tokenKey = "secret:auth0-mgmt-token:tenant.example.com"

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, db.InitRedis(config.RedisConfiguration{
		Addr:          mr.Addr(),
		EncryptionKey: "0123456789abcdef0123456789abcdef",
	}))
	t.Cleanup(func() {
		db.CloseRedis()
		db.RedisClient = nil
	})
	return mr
}

func TestCacheService(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCache", func(t *testing.T) {
		setupRedis(t)
		cache := util.NewCacheService("tenant.example.com")

		token, err := cache.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("StoreAndLoad", func(t *testing.T) {
		mr := setupRedis(t)
		cache := util.NewCacheService("tenant.example.com")
		stored := &management.ServiceToken{
			AccessToken: "mgmt-token",
			ExpiresAt:   time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		}

		require.NoError(t, cache.Store(ctx, stored))

		raw, err := mr.Get(tokenKey)
		require.NoError(t, err)
		assert.NotContains(t, raw, "mgmt-token")

		ttl := mr.TTL(tokenKey)
		assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour, "ttl %s", ttl)

		loaded, err := cache.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "mgmt-token", loaded.AccessToken)
		assert.True(t, stored.ExpiresAt.Equal(loaded.ExpiresAt))
	})

	t.Run("StoreReplacesEntry", func(t *testing.T) {
		setupRedis(t)
		cache := util.NewCacheService("tenant.example.com")
		expiry := time.Now().Add(time.Hour)

		require.NoError(t, cache.Store(ctx, &management.ServiceToken{AccessToken: "first", ExpiresAt: expiry}))
		require.NoError(t, cache.Store(ctx, &management.ServiceToken{AccessToken: "second", ExpiresAt: expiry}))

		loaded, err := cache.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", loaded.AccessToken)
	})

	t.Run("ExpiredTokenDeletesEntry", func(t *testing.T) {
		mr := setupRedis(t)
		cache := util.NewCacheService("tenant.example.com")
		require.NoError(t, cache.Store(ctx, &management.ServiceToken{
			AccessToken: "live",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))
		require.True(t, mr.Exists(tokenKey))

		require.NoError(t, cache.Store(ctx, &management.ServiceToken{
			AccessToken: "stale",
			ExpiresAt:   time.Now().Add(-time.Minute),
		}))

		assert.False(t, mr.Exists(tokenKey))
		loaded, err := cache.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("EntryExpiresWithToken", func(t *testing.T) {
		mr := setupRedis(t)
		cache := util.NewCacheService("tenant.example.com")
		require.NoError(t, cache.Store(ctx, &management.ServiceToken{
			AccessToken: "short",
			ExpiresAt:   time.Now().Add(2 * time.Minute),
		}))

		mr.FastForward(3 * time.Minute)

		loaded, err := cache.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		mr := setupRedis(t)
		cache := util.NewCacheService("tenant.example.com")
		require.NoError(t, mr.Set(tokenKey, "not-base64!"))

		_, err := cache.Load(ctx)
		assert.Error(t, err)
	})
}
