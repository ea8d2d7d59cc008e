// model/user.go
package model

import "encoding/json"

// User is an identity record as returned by the Management API.
type User struct {
	UserID        string        `json:"user_id"`
	Email         string        `json:"email,omitempty"`
	EmailVerified *bool         `json:"email_verified,omitempty"`
	Name          string        `json:"name,omitempty"`
	GivenName     string        `json:"given_name,omitempty"`
	FamilyName    string        `json:"family_name,omitempty"`
	Nickname      string        `json:"nickname,omitempty"`
	Picture       string        `json:"picture,omitempty"`
	LastLogin     string        `json:"last_login,omitempty"`
	LoginsCount   int           `json:"logins_count"`
	Blocked       bool          `json:"blocked,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
	UpdatedAt     string        `json:"updated_at,omitempty"`
	Multifactor   []string      `json:"multifactor,omitempty"`
	Identities    []Identity    `json:"identities,omitempty"`
	UserMetadata  *UserMetadata `json:"user_metadata,omitempty"`
	AppMetadata   *AppMetadata  `json:"app_metadata,omitempty"`

	// Extra holds provider fields not declared above.
	Extra map[string]json.RawMessage `json:"-"`
}

type UserMetadata struct {
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	Locale     string `json:"locale,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Bio        string `json:"bio,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type AppMetadata struct {
	Roles []string `json:"roles,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Identity is a provider account linked to a user.
type Identity struct {
	Provider    string         `json:"provider"`
	UserID      string         `json:"user_id"`
	Connection  string         `json:"connection,omitempty"`
	IsSocial    bool           `json:"isSocial"`
	ProfileData map[string]any `json:"profileData,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UserUpdate is the set of profile fields a console user may change. Absent
// fields are left untouched by the provider.
type UserUpdate struct {
	Name         *string             `json:"name,omitempty" validate:"omitnil,min=2,max=120"`
	Nickname     *string             `json:"nickname,omitempty" validate:"omitnil,min=2,max=80"`
	GivenName    *string             `json:"given_name,omitempty" validate:"omitnil,min=2,max=80"`
	FamilyName   *string             `json:"family_name,omitempty" validate:"omitnil,min=2,max=80"`
	Picture      *string             `json:"picture,omitempty" validate:"omitnil,url"`
	Blocked      *bool               `json:"blocked,omitempty"`
	UserMetadata *UserMetadataUpdate `json:"user_metadata,omitempty"`
}

type UserMetadataUpdate struct {
	Title      *string `json:"title,omitempty" validate:"omitnil,min=2,max=80"`
	Department *string `json:"department,omitempty" validate:"omitnil,min=2,max=80"`
	Locale     *string `json:"locale,omitempty" validate:"omitnil,min=2,max=16"`
	Timezone   *string `json:"timezone,omitempty" validate:"omitnil,min=2,max=64"`
	Bio        *string `json:"bio,omitempty" validate:"omitnil,max=160"`
}

// UnlinkIdentityRequest names the secondary identity to detach from a user.
type UnlinkIdentityRequest struct {
	Provider       string `json:"provider" validate:"required"`
	IdentityUserID string `json:"identityUserId" validate:"required"`
}

// UserListOptions controls a user directory query.
type UserListOptions struct {
	Query   string
	Page    int
	PerPage int
}
