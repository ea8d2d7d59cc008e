// model/profile.go
package model

// Capabilities are the console features the caller may use for a profile
// view.
type Capabilities struct {
	CanEditProfile    bool `json:"canEditProfile"`
	CanReadSecurity   bool `json:"canReadSecurity"`
	CanWriteSecurity  bool `json:"canWriteSecurity"`
	CanChangePassword bool `json:"canChangePassword"`
	CanResetMfa       bool `json:"canResetMfa"`
	CanManagePasskeys bool `json:"canManagePasskeys"`
	CanReadSessions   bool `json:"canReadSessions"`
	CanRevokeSessions bool `json:"canRevokeSessions"`
	ShowSecurityTab   bool `json:"showSecurityTab"`
	ShowSessionsTab   bool `json:"showSessionsTab"`
	IsAdmin           bool `json:"isAdmin"`
}

// Profile is the current caller's own record together with what they may do.
type Profile struct {
	User         *User        `json:"user"`
	Permissions  []string     `json:"permissions"`
	Capabilities Capabilities `json:"capabilities"`
}
