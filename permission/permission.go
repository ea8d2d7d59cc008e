// Package permission turns a session's access-token claims into a set of
// capability tokens and decides whether an actor may operate on a target
// identity.
//
// Permissions follow the resource:action convention. Most operations come in
// pairs: resource:action grants the operation on any user, while
// resource:action_self grants it only when the actor is the target.
package permission

import "sort"

// Permission is a capability token such as "profile:write_self".
type Permission string

const (
	ProfileRead      Permission = "profile:read"
	ProfileReadSelf  Permission = "profile:read_self"
	ProfileWrite     Permission = "profile:write"
	ProfileWriteSelf Permission = "profile:write_self"

	SessionsRead       Permission = "sessions:read"
	SessionsReadSelf   Permission = "sessions:read_self"
	SessionsRevoke     Permission = "sessions:revoke"
	SessionsRevokeSelf Permission = "sessions:revoke_self"

	SecurityRead                  Permission = "security:read"
	SecurityReadSelf              Permission = "security:read_self"
	SecurityWrite                 Permission = "security:write"
	SecurityWriteSelf             Permission = "security:write_self"
	SecurityResetMFA              Permission = "security:reset_mfa"
	SecurityResetMFASelf          Permission = "security:reset_mfa_self"
	SecurityManagePasskeys        Permission = "security:manage_passkeys"
	SecurityManagePasskeysSelf    Permission = "security:manage_passkeys_self"
	SecurityManageSocialLinks     Permission = "security:manage_social_links"
	SecurityManageSocialLinksSelf Permission = "security:manage_social_links_self"
	SecurityChangePasswordSelf    Permission = "security:change_password_self"
	SecurityForcePasswordReset    Permission = "security:force_password_reset"
	SecuritySetPassword           Permission = "security:set_password"

	AdminUIAccess Permission = "admin_ui:access"
)

// Set is an immutable set of permissions. The zero value is the empty set.
type Set struct {
	m map[Permission]struct{}
}

// NewSet builds a set from raw permission strings. Empty strings and
// duplicates are dropped.
func NewSet(perms ...string) Set {
	m := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		if p == "" {
			continue
		}
		m[Permission(p)] = struct{}{}
	}
	return Set{m: m}
}

func (s Set) Has(p Permission) bool {
	_, ok := s.m[p]
	return ok
}

// HasAny reports whether at least one of perms is in the set.
func (s Set) HasAny(perms ...Permission) bool {
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// HasAll reports whether every one of perms is in the set.
func (s Set) HasAll(perms ...Permission) bool {
	for _, p := range perms {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

func (s Set) Len() int {
	return len(s.m)
}

// List returns the permissions in lexical order.
func (s Set) List() []string {
	out := make([]string, 0, len(s.m))
	for p := range s.m {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}
