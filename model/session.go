// model/session.go
package model

// Session is a provider-side login session of a user, unrelated to the
// console request session.
type Session struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
	AuthenticatedAt  string         `json:"authenticated_at,omitempty"`
	LastInteractedAt string         `json:"last_interacted_at,omitempty"`
	ExpiresAt        string         `json:"expires_at,omitempty"`
	IdleExpiresAt    string         `json:"idle_expires_at,omitempty"`
	Device           *SessionDevice `json:"device,omitempty"`
}

type SessionDevice struct {
	InitialUserAgent string     `json:"initial_user_agent,omitempty"`
	LastUserAgent    string     `json:"last_user_agent,omitempty"`
	InitialIP        *SessionIP `json:"initial_ip,omitempty"`
	LastIP           *SessionIP `json:"last_ip,omitempty"`
}

type SessionIP struct {
	IP string `json:"ip,omitempty"`
}

type SessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Next     string    `json:"next,omitempty"`
}
