package permission

import "github.com/dev-mohitbeniwal/idconsole/model"

// View is the console perspective a profile is rendered from.
type View string

const (
	ViewSelf  View = "self"
	ViewAdmin View = "admin"
)

// Capabilities derives the console feature flags for a profile view. In the
// admin view only the "any" permissions count; in the self view either
// variant does.
func Capabilities(set Set, view View) model.Capabilities {
	pick := func(rule Rule) bool {
		if view == ViewAdmin {
			return set.HasAny(rule.Any...)
		}
		return set.HasAny(rule.Any...) || (rule.Self != "" && set.Has(rule.Self))
	}

	c := model.Capabilities{
		CanEditProfile:    pick(WriteProfile),
		CanReadSecurity:   pick(ReadSecurity),
		CanWriteSecurity:  pick(WriteSecurity),
		CanChangePassword: pick(ChangePassword),
		CanResetMfa:       pick(ResetMFA),
		CanManagePasskeys: pick(ManagePasskeys),
		CanReadSessions:   pick(ReadSessions),
		CanRevokeSessions: pick(RevokeSessions),
		IsAdmin:           set.Has(AdminUIAccess),
	}
	c.ShowSecurityTab = c.CanReadSecurity || c.CanWriteSecurity || c.CanChangePassword || c.CanResetMfa
	c.ShowSessionsTab = c.CanReadSessions || c.CanRevokeSessions
	return c
}
