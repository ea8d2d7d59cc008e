package permission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/permission"
)

type stubSession struct {
	subject string
	token   string
	err     error

	gotAudience string
	gotScope    string
}

func (s *stubSession) Subject() string { return s.subject }

func (s *stubSession) AccessToken(_ context.Context, audience, scope string) (string, error) {
	s.gotAudience, s.gotScope = audience, scope
	return s.token, s.err
}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	resolver := permission.NewResolver("https://console.api", "openid profile")

	t.Run("NoSession", func(t *testing.T) {
		set, err := resolver.ResolveWithError(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("PermissionsClaimWins", func(t *testing.T) {
		s := &stubSession{subject: "auth0|a", token: token(t, jwt.MapClaims{
			"permissions": []string{"profile:read_self"},
			"scope":       "profile:write",
		})}

		set := resolver.Resolve(ctx, s)
		assert.Equal(t, []string{"profile:read_self"}, set.List())
		assert.Equal(t, "https://console.api", s.gotAudience)
		assert.Equal(t, "openid profile", s.gotScope)
	})

	t.Run("EmptyPermissionsClaimIgnoresScope", func(t *testing.T) {
		s := &stubSession{token: token(t, jwt.MapClaims{
			"permissions": []string{},
			"scope":       "profile:write",
		})}

		assert.Equal(t, 0, resolver.Resolve(ctx, s).Len())
	})

	t.Run("ScopeFallback", func(t *testing.T) {
		s := &stubSession{token: token(t, jwt.MapClaims{"scope": "openid  profile:read\tsessions:read"})}

		set := resolver.Resolve(ctx, s)
		assert.Equal(t, []string{"openid", "profile:read", "sessions:read"}, set.List())
	})

	t.Run("NeitherClaim", func(t *testing.T) {
		s := &stubSession{token: token(t, jwt.MapClaims{"sub": "auth0|a"})}
		assert.Equal(t, 0, resolver.Resolve(ctx, s).Len())
	})

	t.Run("TokenFailure", func(t *testing.T) {
		s := &stubSession{err: errors.New("refresh failed")}

		set, err := resolver.ResolveWithError(ctx, s)
		assert.Error(t, err)
		assert.Equal(t, 0, set.Len())
		assert.Equal(t, 0, resolver.Resolve(ctx, s).Len())
	})

	t.Run("MalformedToken", func(t *testing.T) {
		s := &stubSession{token: "garbage"}

		set, err := resolver.ResolveWithError(ctx, s)
		assert.ErrorIs(t, err, idc_errors.ErrMalformedToken)
		assert.Equal(t, 0, set.Len())
	})
}
