// model/security.go
package model

// AuthenticationMethod is an enrolled factor such as a passkey, TOTP app or
// phone number.
type AuthenticationMethod struct {
	ID                     string `json:"id"`
	Type                   string `json:"type"`
	Name                   string `json:"name,omitempty"`
	CreatedAt              string `json:"created_at,omitempty"`
	EnrolledAt             string `json:"enrolled_at,omitempty"`
	LastAuthAt             string `json:"last_auth_at,omitempty"`
	Confirmed              *bool  `json:"confirmed,omitempty"`
	UserAgent              string `json:"user_agent,omitempty"`
	CredentialDeviceType   string `json:"credential_device_type,omitempty"`
	CredentialBackedUp     *bool  `json:"credential_backed_up,omitempty"`
	RelyingPartyIdentifier string `json:"relying_party_identifier,omitempty"`
	AAGUID                 string `json:"aaguid,omitempty"`
}

// Enrollment is a Guardian MFA enrollment.
type Enrollment struct {
	ID          string `json:"id"`
	AuthMethod  string `json:"auth_method,omitempty"`
	Status      string `json:"status,omitempty"`
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Identifier  string `json:"identifier,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	EnrolledAt  string `json:"enrolled_at,omitempty"`
	LastAuth    string `json:"last_auth,omitempty"`
}

type EnrollmentTicket struct {
	TicketID  string `json:"ticket_id,omitempty"`
	TicketURL string `json:"ticket_url,omitempty"`
}

// EnrollmentTicketRequest is the console payload for starting an MFA
// enrollment. UserID defaults to the caller.
type EnrollmentTicketRequest struct {
	UserID   *string `json:"userId,omitempty" validate:"omitnil,min=1"`
	Factor   *string `json:"factor,omitempty" validate:"omitnil,min=1"`
	SendMail *bool   `json:"sendMail,omitempty"`
}

// EnrollmentTicketParams is the Management API body for
// POST /guardian/enrollments/ticket.
type EnrollmentTicketParams struct {
	UserID                   string `json:"user_id"`
	AllowMultipleEnrollments bool   `json:"allow_multiple_enrollments"`
	SendMail                 bool   `json:"send_mail"`
	Factor                   string `json:"factor,omitempty"`
}

type PasswordChangeTicket struct {
	Ticket string `json:"ticket"`
}

// PasswordChangeTicketParams is the Management API body for
// POST /tickets/password-change.
type PasswordChangeTicketParams struct {
	UserID       string `json:"user_id"`
	ConnectionID string `json:"connection_id,omitempty"`
	ResultURL    string `json:"result_url,omitempty"`
}
