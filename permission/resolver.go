package permission

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/session"
)

// Resolver derives the permission set of a session from the claims of its
// access token for the configured API audience.
type Resolver struct {
	audience string
	scope    string
}

func NewResolver(audience, scope string) *Resolver {
	return &Resolver{audience: audience, scope: scope}
}

// Resolve returns the session's permissions. It never fails: a missing
// session, a token that cannot be obtained or a token that cannot be decoded
// all yield the empty set.
func (r *Resolver) Resolve(ctx context.Context, s session.Session) Set {
	set, err := r.ResolveWithError(ctx, s)
	if err != nil {
		logger.Warn("Resolving permissions failed, continuing with none",
			zap.Error(err),
			zap.String("audience", r.audience))
	}
	return set
}

// ResolveWithError behaves like Resolve and also reports why the set is
// empty when resolution failed, so callers can tell a system failure from a
// user who legitimately holds nothing.
func (r *Resolver) ResolveWithError(ctx context.Context, s session.Session) (Set, error) {
	if s == nil {
		return Set{}, nil
	}

	token, err := s.AccessToken(ctx, r.audience, r.scope)
	if err != nil {
		return Set{}, fmt.Errorf("obtain access token: %w", err)
	}

	claims, err := session.DecodeTrustedClaims(token)
	if err != nil {
		return Set{}, err
	}

	return FromClaims(claims), nil
}

// FromClaims prefers the permissions array claim and falls back to the
// space-delimited scope claim.
func FromClaims(claims *session.TrustedClaims) Set {
	if claims.HasPermissions {
		return NewSet(claims.Permissions...)
	}
	if claims.Scope != "" {
		return NewSet(strings.Fields(claims.Scope)...)
	}
	return Set{}
}
