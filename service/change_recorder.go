// service/change_recorder.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// changeRecorder turns identity change events into audit entries and
// notifications.
type changeRecorder struct {
	auditService    audit.Service
	notificationSvc *util.NotificationService
}

func newChangeRecorder(auditService audit.Service, notificationSvc *util.NotificationService, eventBus *util.EventBus) *changeRecorder {
	r := &changeRecorder{auditService: auditService, notificationSvc: notificationSvc}
	for _, eventType := range util.IdentityEvents {
		eventBus.Subscribe(eventType, r.handleIdentityChange)
	}
	return r
}

func (r *changeRecorder) handleIdentityChange(ctx context.Context, event util.Event) error {
	change, ok := event.Payload.(util.IdentityChange)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Identity change event received",
		zap.String("eventType", event.Type),
		zap.String("actorID", change.ActorID),
		zap.String("userID", change.TargetID))

	err := r.auditService.LogAccess(ctx, audit.AuditLog{
		ActorID:       change.ActorID,
		Action:        event.Type,
		TargetID:      change.TargetID,
		AccessGranted: true,
		ChangeDetails: audit.ChangeDetails(change.Details),
	})
	if err != nil {
		logger.Error("Failed to record identity change", zap.Error(err), zap.String("eventType", event.Type))
		// Continue execution despite the error
	}

	if err := r.notificationSvc.NotifyIdentityChange(ctx, event.Type, change); err != nil {
		logger.Warn("Failed to send identity change notification", zap.Error(err), zap.String("eventType", event.Type))
	}

	if change.ActorID != change.TargetID {
		message := fmt.Sprintf("%s changed %s: %s", change.ActorID, change.TargetID, event.Type)
		if err := r.notificationSvc.NotifyAdmins(ctx, message); err != nil {
			logger.Warn("Failed to notify admins", zap.Error(err))
		}
	}
	return nil
}
