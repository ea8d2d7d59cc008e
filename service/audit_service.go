// service/audit_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	helper_util "github.com/dev-mohitbeniwal/idconsole/util/helper"
)

// DefaultAuditWindow is how far back an audit query reaches without a from
// bound.
const DefaultAuditWindow = 24 * time.Hour

// IAuditService defines the interface for reading the console audit trail
type IAuditService interface {
	QueryLogs(ctx context.Context, actor permission.Actor, from, to, userID, resourceID string) ([]audit.AuditLog, error)
}

type AuditService struct {
	auditService audit.Service
	access       *accessControl
	now          func() time.Time
}

var _ IAuditService = &AuditService{}

func NewAuditService(auditService audit.Service) *AuditService {
	return &AuditService{
		auditService: auditService,
		access:       newAccessControl(auditService),
		now:          time.Now,
	}
}

// QueryLogs returns audit entries for console administrators. userID
// filters by actor and resourceID by target.
func (s *AuditService) QueryLogs(ctx context.Context, actor permission.Actor, from, to, userID, resourceID string) ([]audit.AuditLog, error) {
	if err := s.access.authorizeAny(ctx, actor, permission.AccessAdminUI, "audit"); err != nil {
		return nil, err
	}

	start, end, err := helper_util.ParseTimeRange(from, to, s.now().UTC(), DefaultAuditWindow)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", idc_errors.ErrInvalidTimeRange, err)
	}

	logs, err := s.auditService.QueryLogs(ctx, audit.Query{
		From:     start,
		To:       end,
		ActorID:  userID,
		TargetID: resourceID,
	})
	if err != nil {
		logger.Error("Error querying audit logs", zap.Error(err), zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	return logs, nil
}
