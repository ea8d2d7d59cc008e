package management

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/model"
)

// fakeTenant stands in for an Auth0 tenant. Routes are registered per test.
type fakeTenant struct {
	*httptest.Server
	mux           *http.ServeMux
	tokenRequests *atomic.Int64
	expiresIn     int64

	mu       sync.Mutex
	requests []*http.Request
	bodies   []map[string]interface{}
}

func newFakeTenant(t *testing.T) *fakeTenant {
	t.Helper()
	ft := &fakeTenant{
		mux:           http.NewServeMux(),
		tokenRequests: atomic.NewInt64(0),
		expiresIn:     86400,
	}
	ft.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		n := ft.tokenRequests.Inc()
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["grant_type"] != "client_credentials" || body["client_id"] != "m2m-id" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"access_denied"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "mgmt-token-" + strconv.FormatInt(n, 10),
			"expires_in":   ft.expiresIn,
			"token_type":   "Bearer",
		})
	})
	ft.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ft.mu.Lock()
		ft.requests = append(ft.requests, r.Clone(context.Background()))
		var body map[string]interface{}
		if r.Body != nil && r.URL.Path != "/oauth/token" {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		ft.bodies = append(ft.bodies, body)
		ft.mu.Unlock()
		ft.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(ft.Close)
	return ft
}

func (ft *fakeTenant) lastRequest() (*http.Request, map[string]interface{}) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.requests[len(ft.requests)-1], ft.bodies[len(ft.bodies)-1]
}

func testConfig(baseURL string) Config {
	return Config{
		Domain:       "tenant.example.auth0.com",
		ClientID:     "m2m-id",
		ClientSecret: "m2m-secret",
		BaseURL:      baseURL,
	}
}

func TestServiceToken(t *testing.T) {
	ctx := context.Background()

	t.Run("ReusesCachedToken", func(t *testing.T) {
		ft := newFakeTenant(t)
		g := NewGateway(testConfig(ft.URL))

		first, err := g.ServiceToken(ctx)
		require.NoError(t, err)
		second, err := g.ServiceToken(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int64(1), ft.tokenRequests.Load())
	})

	t.Run("NearExpiryRefreshesOnce", func(t *testing.T) {
		ft := newFakeTenant(t)
		now := time.Now()
		cache := NewMemoryTokenCache()
		require.NoError(t, cache.Store(ctx, &ServiceToken{AccessToken: "stale", ExpiresAt: now.Add(30 * time.Second)}))
		g := NewGateway(testConfig(ft.URL), WithTokenCache(cache), WithClock(func() time.Time { return now }))

		token, err := g.ServiceToken(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "stale", token)

		again, err := g.ServiceToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, token, again)
		assert.Equal(t, int64(1), ft.tokenRequests.Load())

		stored, _ := cache.Load(ctx)
		assert.Equal(t, now.Add(86400*time.Second), stored.ExpiresAt)
	})

	t.Run("FreshTokenNoRefresh", func(t *testing.T) {
		ft := newFakeTenant(t)
		now := time.Now()
		cache := NewMemoryTokenCache()
		require.NoError(t, cache.Store(ctx, &ServiceToken{AccessToken: "fresh", ExpiresAt: now.Add(3600 * time.Second)}))
		g := NewGateway(testConfig(ft.URL), WithTokenCache(cache), WithClock(func() time.Time { return now }))

		token, err := g.ServiceToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)
		assert.Equal(t, int64(0), ft.tokenRequests.Load())
	})

	t.Run("ExpiredTokenReplaced", func(t *testing.T) {
		ft := newFakeTenant(t)
		now := time.Now()
		g := NewGateway(testConfig(ft.URL), WithClock(func() time.Time { return now }))

		first, err := g.ServiceToken(ctx)
		require.NoError(t, err)

		now = now.Add(86400 * time.Second)
		second, err := g.ServiceToken(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, int64(2), ft.tokenRequests.Load())
	})

	t.Run("TokenEndpointFailure", func(t *testing.T) {
		ft := newFakeTenant(t)
		cfg := testConfig(ft.URL)
		cfg.ClientID = "wrong"
		g := NewGateway(cfg)

		_, err := g.ServiceToken(ctx)
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusUnauthorized, upstream.Status)
		assert.Contains(t, upstream.Body, "access_denied")
	})

	t.Run("MissingConfiguration", func(t *testing.T) {
		g := NewGateway(Config{Domain: "tenant.example.auth0.com", ClientID: "m2m-id"})

		_, err := g.ServiceToken(ctx)
		assert.ErrorIs(t, err, idc_errors.ErrMissingConfiguration)
		assert.Contains(t, err.Error(), "AUTH0_M2M_CLIENT_SECRET")
	})
}

func TestCall(t *testing.T) {
	ctx := context.Background()
	ft := newFakeTenant(t)
	ft.mux.HandleFunc("/api/v2/no-content", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	ft.mux.HandleFunc("/api/v2/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ft.mux.HandleFunc("/api/v2/json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":"auth0|a"}`))
	})
	ft.mux.HandleFunc("/api/v2/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	})
	g := NewGateway(testConfig(ft.URL))

	t.Run("NoContent", func(t *testing.T) {
		raw, err := g.call(ctx, "test", http.MethodDelete, "/no-content", nil)
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		user, err := callJSON[model.User](ctx, g, "test", http.MethodGet, "/empty", nil)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("JSON", func(t *testing.T) {
		user, err := callJSON[model.User](ctx, g, "test", http.MethodGet, "/json", nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "auth0|a", user.UserID)

		req, _ := ft.lastRequest()
		assert.Equal(t, "Bearer mgmt-token-1", req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	})

	t.Run("Failure", func(t *testing.T) {
		_, err := g.call(ctx, "test", http.MethodGet, "/fail", nil)
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
		assert.Equal(t, "rate limited", upstream.Body)
		assert.Contains(t, err.Error(), "429")
	})
}

func TestWithTimeout(t *testing.T) {
	t.Run("DefaultClient", func(t *testing.T) {
		g := NewGateway(Config{}, WithTimeout(3*time.Second))
		assert.Equal(t, 3*time.Second, g.client.Timeout)
	})

	t.Run("CallerClientUntouched", func(t *testing.T) {
		before := http.DefaultClient.Timeout

		g := NewGateway(Config{}, WithHTTPClient(http.DefaultClient), WithTimeout(3*time.Second))

		assert.Equal(t, before, http.DefaultClient.Timeout)
		assert.NotSame(t, http.DefaultClient, g.client)
		assert.Equal(t, 3*time.Second, g.client.Timeout)
	})
}
