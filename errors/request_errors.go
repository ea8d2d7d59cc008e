// errors/request_errors.go
package errors

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidEnrollmentID = errors.New("invalid enrollment id")
	ErrInvalidMethodID     = errors.New("invalid authentication method id")
	ErrEmailUpdateDisabled = errors.New("email updates are disabled for now")
	ErrInvalidTimeRange    = errors.New("invalid time range")
)

// ValidationError reports payload fields that failed validation. It
// unwraps to ErrInvalidPayload.
type ValidationError struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

func (e *ValidationError) AddField(field, message string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

func (e *ValidationError) AddForm(message string) {
	e.FormErrors = append(e.FormErrors, message)
}

func (e *ValidationError) Empty() bool {
	return len(e.FormErrors) == 0 && len(e.FieldErrors) == 0
}

func (e *ValidationError) Error() string {
	parts := append([]string{}, e.FormErrors...)
	for field, messages := range e.FieldErrors {
		parts = append(parts, field+": "+strings.Join(messages, ", "))
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPayload
}
