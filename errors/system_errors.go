// errors/system_errors.go
package errors

import "errors"

var (
	ErrMissingConfiguration  = errors.New("missing required configuration")
	ErrInternalServer        = errors.New("internal server error")
	ErrAuditQueryUnsupported = errors.New("audit repository does not support queries")
)
