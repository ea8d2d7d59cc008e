// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/idconsole/logging"
)

type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyIdentityChange announces a change made to a user's identity through
// the console.
func (n *NotificationService) NotifyIdentityChange(ctx context.Context, changeType string, change IdentityChange) error {
	switch changeType {
	case EventProfileUpdated:
		logger.Info("NOTIFICATION: Profile updated",
			zap.String("actorID", change.ActorID),
			zap.String("userID", change.TargetID))
	case EventSessionsRevoked, EventSessionRevoked:
		logger.Info("NOTIFICATION: Sessions revoked",
			zap.String("actorID", change.ActorID),
			zap.String("userID", change.TargetID),
			zap.Any("details", change.Details))
	case EventPasswordResetIssued:
		logger.Info("NOTIFICATION: Password reset ticket issued",
			zap.String("actorID", change.ActorID),
			zap.String("userID", change.TargetID))
	case EventMFAReset, EventEnrollmentDeleted, EventAuthMethodDeleted, EventEnrollmentTicketSent:
		logger.Info("NOTIFICATION: Authentication factors changed",
			zap.String("changeType", changeType),
			zap.String("actorID", change.ActorID),
			zap.String("userID", change.TargetID),
			zap.Any("details", change.Details))
	case EventIdentityUnlinked:
		logger.Info("NOTIFICATION: Linked identity removed",
			zap.String("actorID", change.ActorID),
			zap.String("userID", change.TargetID),
			zap.Any("details", change.Details))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

// NotifyAdmins tells console administrators about a change a user made to
// an account other than their own.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
