// service/access.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/metrics"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// accessControl applies permission rules and records every decision.
type accessControl struct {
	auditService audit.Service
}

func newAccessControl(auditService audit.Service) *accessControl {
	return &accessControl{auditService: auditService}
}

// authorize checks rule for actor against targetID and returns ErrForbidden
// when it does not hold.
func (a *accessControl) authorize(ctx context.Context, actor permission.Actor, rule permission.Rule, targetID string) error {
	granted := rule.Allows(actor, targetID)
	a.record(ctx, actor, rule, targetID, granted)
	if !granted {
		return idc_errors.ErrForbidden
	}
	return nil
}

// authorizeAny requires one of the rule's "any" permissions.
func (a *accessControl) authorizeAny(ctx context.Context, actor permission.Actor, rule permission.Rule, targetID string) error {
	granted := rule.AllowsAny(actor)
	a.record(ctx, actor, rule, targetID, granted)
	if !granted {
		return idc_errors.ErrForbidden
	}
	return nil
}

// precheck is the first gate of operations whose owner is only known after
// a provider lookup: the actor must hold at least one permission of rule.
func (a *accessControl) precheck(ctx context.Context, actor permission.Actor, rule permission.Rule, targetID string) error {
	if rule.AllowsSome(actor) {
		return nil
	}
	a.record(ctx, actor, rule, targetID, false)
	return idc_errors.ErrForbidden
}

// decide records an ownership decision made after a lookup.
func (a *accessControl) decide(ctx context.Context, actor permission.Actor, rule permission.Rule, targetID string, granted bool) error {
	a.record(ctx, actor, rule, targetID, granted)
	if !granted {
		return idc_errors.ErrForbidden
	}
	return nil
}

func (a *accessControl) record(ctx context.Context, actor permission.Actor, rule permission.Rule, targetID string, granted bool) {
	metrics.ObserveDecision(rule.Action, granted)

	entry := audit.AuditLog{
		ActorID:       actor.ID,
		Action:        rule.Action,
		TargetID:      targetID,
		AccessGranted: granted,
	}
	if granted {
		entry.Permission = grantingPermission(actor, rule)
	}
	if err := a.auditService.LogAccess(ctx, entry); err != nil {
		logger.Warn("Failed to record access decision",
			zap.Error(err),
			zap.String("action", rule.Action),
			zap.String("actorID", actor.ID))
	}
}

func grantingPermission(actor permission.Actor, rule permission.Rule) string {
	var held []string
	for _, p := range rule.Any {
		if actor.Permissions.Has(p) {
			held = append(held, string(p))
		}
	}
	if len(held) == 0 && rule.Self != "" && actor.Permissions.Has(rule.Self) {
		held = append(held, string(rule.Self))
	}
	return strings.Join(held, " ")
}

// resolveTarget maps "me" onto the actor and rejects an empty id.
func resolveTarget(actor permission.Actor, id string) (string, error) {
	target := permission.ResolveTarget(actor.ID, strings.TrimSpace(id))
	if target == "" {
		return "", idc_errors.ErrInvalidUserID
	}
	return target, nil
}

func publishChange(ctx context.Context, bus *util.EventBus, eventType string, actor permission.Actor, targetID string, details map[string]interface{}) {
	bus.Publish(ctx, eventType, util.IdentityChange{
		ActorID:  actor.ID,
		TargetID: targetID,
		Details:  details,
	})
}
