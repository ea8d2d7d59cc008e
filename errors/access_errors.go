// errors/access_errors.go
package errors

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNoSession        = errors.New("no session")
	ErrAudienceMismatch = errors.New("access token not issued for the configured audience")
	ErrMalformedToken   = errors.New("malformed access token")
	ErrBlockedAdminOnly = errors.New("blocked status can only be modified by admins")
)
