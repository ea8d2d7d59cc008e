// Package session identifies the caller of a console request.
//
// Sign-in happens in the identity layer in front of this service. It
// forwards the user's access token either as an Authorization bearer
// header or in a session cookie, and the token's subject is the actor for
// every permission decision.
package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
)

// Session is an authenticated console session.
type Session interface {
	// Subject is the opaque id of the signed-in user.
	Subject() string

	// AccessToken returns a token issued for audience. scope is the scope
	// that would be requested if a new token had to be obtained.
	AccessToken(ctx context.Context, audience, scope string) (string, error)
}

// BearerSession is a session carried by the user's own access token.
type BearerSession struct {
	token  string
	claims *TrustedClaims
}

var _ Session = (*BearerSession)(nil)

// NewBearerSession decodes token and returns a session for its subject.
// Tokens without a subject, or past their expiry, do not form a session.
func NewBearerSession(token string, now time.Time) (*BearerSession, error) {
	claims, err := DecodeTrustedClaims(token)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.Expired(now) {
		return nil, idc_errors.ErrNoSession
	}
	return &BearerSession{token: token, claims: claims}, nil
}

func (s *BearerSession) Subject() string {
	return s.claims.Subject
}

// AccessToken returns the bearer token when it was issued for audience. An
// empty audience accepts any token. The scope of a bearer token is fixed at
// issuance, so scope is not consulted.
func (s *BearerSession) AccessToken(_ context.Context, audience, _ string) (string, error) {
	if audience != "" && !s.claims.HasAudience(audience) {
		return "", idc_errors.ErrAudienceMismatch
	}
	return s.token, nil
}

// FromRequest builds a session from the Authorization header, falling back
// to the cookie named cookieName. It returns ErrNoSession when the request
// carries no usable token.
func FromRequest(r *http.Request, cookieName string) (Session, error) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" && cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, idc_errors.ErrNoSession
	}

	s, err := NewBearerSession(token, time.Now())
	if err != nil {
		return nil, err
	}
	return s, nil
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
