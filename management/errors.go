package management

import "fmt"

// UpstreamError is a non-2xx response from the identity provider. Body is
// the raw response text.
type UpstreamError struct {
	Op     string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("auth0 %s failed (%d): %s", e.Op, e.Status, e.Body)
}
