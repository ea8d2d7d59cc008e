package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
)

// TrustedClaims are access-token claims decoded without checking the token
// signature. Tokens reach this service only after the identity layer in
// front of it has validated them, so the claims are treated as
// pre-validated. DecodeTrustedClaims is the only constructor.
type TrustedClaims struct {
	Subject   string
	Audience  []string
	ExpiresAt time.Time

	// Permissions is the RBAC permissions claim. HasPermissions reports
	// whether the claim was present as an array, even an empty one.
	Permissions    []string
	HasPermissions bool

	// Scope is the space-delimited scope claim.
	Scope string
}

var claimsParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeTrustedClaims decodes the payload segment of a JWT. The signature
// segment may be missing and the alg header is not consulted.
func DecodeTrustedClaims(token string) (*TrustedClaims, error) {
	if strings.Count(token, ".") == 1 {
		token += "."
	}

	claims := jwt.MapClaims{}
	// An unknown alg is reported after the claims are decoded.
	if _, _, err := claimsParser.ParseUnverified(token, claims); err != nil && !errors.Is(err, jwt.ErrTokenUnverifiable) {
		return nil, fmt.Errorf("%w: %v", idc_errors.ErrMalformedToken, err)
	}

	tc := &TrustedClaims{}
	tc.Subject, _ = claims.GetSubject()
	if aud, err := claims.GetAudience(); err == nil {
		tc.Audience = aud
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}

	if raw, ok := claims["permissions"].([]interface{}); ok {
		tc.HasPermissions = true
		tc.Permissions = make([]string, 0, len(raw))
		for _, p := range raw {
			if s, ok := p.(string); ok {
				tc.Permissions = append(tc.Permissions, s)
			}
		}
	}
	if scope, ok := claims["scope"].(string); ok {
		tc.Scope = scope
	}

	return tc, nil
}

// HasAudience reports whether audience is one of the token's audiences.
func (c *TrustedClaims) HasAudience(audience string) bool {
	for _, aud := range c.Audience {
		if aud == audience {
			return true
		}
	}
	return false
}

// Expired reports whether the token carries an expiry that has passed.
func (c *TrustedClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
