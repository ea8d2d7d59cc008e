// Package management is the gateway to the Auth0 Management API. It owns a
// client-credentials service token and exposes one method per provider
// operation the console uses.
package management

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/metrics"
)

const apiPrefix = "/api/v2"

// Gateway calls the Management API on behalf of the console.
type Gateway struct {
	cfg    Config
	client *http.Client
	cache  TokenCache
	now    func() time.Time
}

type Option func(*Gateway)

// WithHTTPClient replaces the default pooled client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

// WithTokenCache replaces the in-process token cache, for example with one
// shared between replicas.
func WithTokenCache(c TokenCache) Option {
	return func(g *Gateway) { g.cache = c }
}

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithTimeout bounds every provider request. It applies to a copy of the
// client installed so far, never to the caller's client.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		c := *g.client
		c.Timeout = d
		g.client = &c
	}
}

// NewGateway builds a gateway. Configuration is validated lazily, on the
// first call that needs it.
func NewGateway(cfg Config, opts ...Option) *Gateway {
	g := &Gateway{
		cfg:    cfg,
		client: cleanhttp.DefaultPooledClient(),
		cache:  NewMemoryTokenCache(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ServiceToken returns the cached token while it is fresh and otherwise
// exchanges client credentials for a new one. Concurrent callers that find
// the cache stale may each perform an exchange; the last one stored wins.
func (g *Gateway) ServiceToken(ctx context.Context) (string, error) {
	now := g.now()

	cached, err := g.cache.Load(ctx)
	if err != nil {
		logger.Warn("Service token cache read failed", zap.Error(err))
	}
	if cached.Fresh(now) {
		return cached.AccessToken, nil
	}

	if err := g.cfg.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(tokenRequest{
		GrantType:    "client_credentials",
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		Audience:     g.cfg.audience(),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.baseURL()+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream("oauth.token", 0)
		return "", fmt.Errorf("auth0 token request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream("oauth.token", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read auth0 token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{Op: "token request", Status: resp.StatusCode, Body: string(raw)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return "", fmt.Errorf("decode auth0 token response: %w", err)
	}

	token := &ServiceToken{
		AccessToken: tr.AccessToken,
		ExpiresAt:   now.Add(time.Duration(tr.ExpiresIn) * time.Second),
	}
	if err := g.cache.Store(ctx, token); err != nil {
		logger.Warn("Service token cache write failed", zap.Error(err))
	}
	metrics.ObserveTokenRefresh()
	logger.Debug("Refreshed management API token", zap.Time("expiresAt", token.ExpiresAt))

	return token.AccessToken, nil
}

// call performs one Management API request. It returns nil for a 204 or an
// empty body.
func (g *Gateway) call(ctx context.Context, op, method, path string, payload interface{}) ([]byte, error) {
	token, err := g.ServiceToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.baseURL()+apiPrefix+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(op, 0)
		return nil, fmt.Errorf("auth0 %s: %w", op, err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(op, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read auth0 %s response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Management API request failed",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode))
		return nil, &UpstreamError{Op: op, Status: resp.StatusCode, Body: string(raw)}
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return raw, nil
}

// callJSON decodes the response into a T. A nil result with a nil error
// means the provider answered with no content.
func callJSON[T any](ctx context.Context, g *Gateway, op, method, path string, payload interface{}) (*T, error) {
	raw, err := g.call(ctx, op, method, path, payload)
	if err != nil || raw == nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode auth0 %s response: %w", op, err)
	}
	return &out, nil
}
