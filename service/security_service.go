// service/security_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/management"
	"github.com/dev-mohitbeniwal/idconsole/model"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// ISecurityService defines the interface for Guardian MFA enrollments
type ISecurityService interface {
	ListUserEnrollments(ctx context.Context, actor permission.Actor, userID string) ([]model.Enrollment, error)
	GetEnrollment(ctx context.Context, actor permission.Actor, enrollmentID string) (*model.Enrollment, error)
	DeleteEnrollment(ctx context.Context, actor permission.Actor, enrollmentID string) error
	CreateEnrollmentTicket(ctx context.Context, actor permission.Actor, body []byte) (*model.EnrollmentTicket, error)
}

type SecurityService struct {
	api            management.API
	access         *accessControl
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ ISecurityService = &SecurityService{}

func NewSecurityService(api management.API, auditService audit.Service, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *SecurityService {
	return &SecurityService{
		api:            api,
		access:         newAccessControl(auditService),
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *SecurityService) ListUserEnrollments(ctx context.Context, actor permission.Actor, userID string) ([]model.Enrollment, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.access.authorize(ctx, actor, permission.ReadSecurity, target); err != nil {
		return nil, err
	}

	enrollments, err := s.api.ListUserEnrollments(ctx, target)
	if err != nil {
		logger.Error("Error listing enrollments", zap.Error(err), zap.String("userID", target))
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

// ownsEnrollment reports whether enrollmentID is one of the actor's own
// enrollments.
func (s *SecurityService) ownsEnrollment(ctx context.Context, actor permission.Actor, enrollmentID string) (bool, error) {
	enrollments, err := s.api.ListUserEnrollments(ctx, actor.ID)
	if err != nil {
		return false, err
	}
	for _, e := range enrollments {
		if e.ID == enrollmentID {
			return true, nil
		}
	}
	return false, nil
}

// checkEnrollmentAccess grants holders of the rule's "any" permission and
// otherwise requires the enrollment to be the actor's. It returns the user
// the change applies to: the actor for an owned enrollment, or the
// enrollment id itself when the owner was never looked up.
func (s *SecurityService) checkEnrollmentAccess(ctx context.Context, actor permission.Actor, rule permission.Rule, enrollmentID string) (string, error) {
	if enrollmentID == "" {
		return "", idc_errors.ErrInvalidEnrollmentID
	}
	if err := s.access.precheck(ctx, actor, rule, enrollmentID); err != nil {
		return "", err
	}
	if rule.AllowsAny(actor) {
		return enrollmentID, s.access.decide(ctx, actor, rule, enrollmentID, true)
	}

	owned, err := s.ownsEnrollment(ctx, actor, enrollmentID)
	if err != nil {
		logger.Error("Error listing own enrollments", zap.Error(err), zap.String("userID", actor.ID))
		return "", fmt.Errorf("failed to list enrollments: %w", err)
	}
	return actor.ID, s.access.decide(ctx, actor, rule, enrollmentID, owned)
}

func (s *SecurityService) GetEnrollment(ctx context.Context, actor permission.Actor, enrollmentID string) (*model.Enrollment, error) {
	if _, err := s.checkEnrollmentAccess(ctx, actor, permission.ReadSecurity, enrollmentID); err != nil {
		return nil, err
	}

	enrollment, err := s.api.GetGuardianEnrollment(ctx, enrollmentID)
	if err != nil {
		logger.Error("Error retrieving enrollment", zap.Error(err), zap.String("enrollmentID", enrollmentID))
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return enrollment, nil
}

// DeleteEnrollment looks the enrollment up before deleting it so a missing
// enrollment fails with the provider's error.
func (s *SecurityService) DeleteEnrollment(ctx context.Context, actor permission.Actor, enrollmentID string) error {
	target, err := s.checkEnrollmentAccess(ctx, actor, permission.ResetMFA, enrollmentID)
	if err != nil {
		return err
	}

	if _, err := s.api.GetGuardianEnrollment(ctx, enrollmentID); err != nil {
		logger.Error("Error retrieving enrollment", zap.Error(err), zap.String("enrollmentID", enrollmentID))
		return fmt.Errorf("failed to get enrollment: %w", err)
	}
	if err := s.api.DeleteGuardianEnrollment(ctx, enrollmentID); err != nil {
		logger.Error("Error deleting enrollment", zap.Error(err), zap.String("enrollmentID", enrollmentID))
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}

	publishChange(ctx, s.eventBus, util.EventEnrollmentDeleted, actor, target, map[string]interface{}{"enrollmentId": enrollmentID})
	return nil
}

// CreateEnrollmentTicket starts an MFA enrollment for the user in the
// payload, defaulting to the actor. A body that is not JSON at all counts
// as an empty request.
func (s *SecurityService) CreateEnrollmentTicket(ctx context.Context, actor permission.Actor, body []byte) (*model.EnrollmentTicket, error) {
	if !json.Valid(body) {
		body = []byte("{}")
	}

	var req model.EnrollmentTicketRequest
	if err := s.validationUtil.DecodeStrict(body, &req); err != nil {
		return nil, err
	}

	target := actor.ID
	if req.UserID != nil {
		target = *req.UserID
	}
	if err := s.access.authorize(ctx, actor, permission.WriteSecurity, target); err != nil {
		return nil, err
	}

	params := model.EnrollmentTicketParams{
		UserID:                   target,
		AllowMultipleEnrollments: true,
	}
	if req.SendMail != nil {
		params.SendMail = *req.SendMail
	}
	if req.Factor != nil {
		params.Factor = *req.Factor
	}

	ticket, err := s.api.CreateGuardianEnrollmentTicket(ctx, params)
	if err != nil {
		logger.Error("Error creating enrollment ticket", zap.Error(err), zap.String("userID", target))
		return nil, fmt.Errorf("failed to create enrollment ticket: %w", err)
	}

	publishChange(ctx, s.eventBus, util.EventEnrollmentTicketSent, actor, target, map[string]interface{}{
		"factor":   params.Factor,
		"sendMail": params.SendMail,
	})
	return ticket, nil
}
