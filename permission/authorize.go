package permission

// Me is the target id that stands for the caller.
const Me = "me"

// Actor is the authenticated principal of a request and the permissions
// resolved for it.
type Actor struct {
	ID          string
	Permissions Set
}

// Authorize grants when any is held, or when self is held and the actor is
// the target.
func Authorize(set Set, actorID, targetID string, anyPerm, selfPerm Permission) bool {
	if set.Has(anyPerm) {
		return true
	}
	return set.Has(selfPerm) && actorID == targetID
}

// Rule is an any/self permission pair. Some operations accept several
// "any" permissions; holding one of them is enough.
type Rule struct {
	Action string
	Any    []Permission
	Self   Permission
}

// NewRule returns the rule for the common single any/self pair.
func NewRule(action string, anyPerm, selfPerm Permission) Rule {
	return Rule{Action: action, Any: []Permission{anyPerm}, Self: selfPerm}
}

// Allows applies Authorize across every "any" permission of the rule.
func (r Rule) Allows(actor Actor, targetID string) bool {
	for _, p := range r.Any {
		if Authorize(actor.Permissions, actor.ID, targetID, p, r.Self) {
			return true
		}
	}
	if len(r.Any) == 0 {
		return r.Self != "" && actor.Permissions.Has(r.Self) && actor.ID == targetID
	}
	return false
}

// AllowsAny reports whether the actor holds one of the rule's "any"
// permissions, independent of the target.
func (r Rule) AllowsAny(actor Actor) bool {
	return actor.Permissions.HasAny(r.Any...)
}

// AllowsSome reports whether the actor holds any permission of the rule at
// all. Operations whose target owner is only known after a lookup use it as
// a first gate.
func (r Rule) AllowsSome(actor Actor) bool {
	return r.AllowsAny(actor) || (r.Self != "" && actor.Permissions.Has(r.Self))
}

// ResolveTarget maps the "me" alias to the actor's own id. Authorization
// still runs against the returned id.
func ResolveTarget(actorID, id string) string {
	if id == Me && actorID != "" {
		return actorID
	}
	return id
}

var (
	ReadProfile       = NewRule("profile.read", ProfileRead, ProfileReadSelf)
	WriteProfile      = NewRule("profile.write", ProfileWrite, ProfileWriteSelf)
	ReadSessions      = NewRule("sessions.read", SessionsRead, SessionsReadSelf)
	RevokeSessions    = NewRule("sessions.revoke", SessionsRevoke, SessionsRevokeSelf)
	ReadSecurity      = NewRule("security.read", SecurityRead, SecurityReadSelf)
	WriteSecurity     = NewRule("security.write", SecurityWrite, SecurityWriteSelf)
	ResetMFA          = NewRule("security.reset_mfa", SecurityResetMFA, SecurityResetMFASelf)
	ManagePasskeys    = NewRule("security.manage_passkeys", SecurityManagePasskeys, SecurityManagePasskeysSelf)
	ManageSocialLinks = NewRule("security.manage_social_links", SecurityManageSocialLinks, SecurityManageSocialLinksSelf)
	ChangePassword    = Rule{Action: "security.change_password", Any: []Permission{SecurityForcePasswordReset, SecuritySetPassword}, Self: SecurityChangePasswordSelf}
	ListUsers         = Rule{Action: "profile.list", Any: []Permission{ProfileRead}}
	AccessAdminUI     = Rule{Action: "admin_ui.access", Any: []Permission{AdminUIAccess}}
)
