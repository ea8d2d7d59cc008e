// service/user_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/management"
	"github.com/dev-mohitbeniwal/idconsole/model"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// IUserService defines the interface for user profile and account security
// operations
type IUserService interface {
	ListUsers(ctx context.Context, actor permission.Actor, opts model.UserListOptions) ([]model.User, error)
	GetUser(ctx context.Context, actor permission.Actor, userID string) (*model.User, error)
	UpdateUser(ctx context.Context, actor permission.Actor, userID string, body []byte) (*model.User, error)
	Profile(ctx context.Context, actor permission.Actor) (*model.Profile, error)
	AdminProfile(ctx context.Context, actor permission.Actor, userID string) (*model.Profile, error)
	UnlinkIdentity(ctx context.Context, actor permission.Actor, userID string, body []byte) error
	ListAuthenticationMethods(ctx context.Context, actor permission.Actor, userID string) ([]model.AuthenticationMethod, error)
	DeleteAuthenticationMethod(ctx context.Context, actor permission.Actor, userID, methodID string) error
	RequestPasswordReset(ctx context.Context, actor permission.Actor, userID string) (string, error)
	ResetMFA(ctx context.Context, actor permission.Actor, userID string) ([]string, error)
}

// UserService handles business logic for user operations
type UserService struct {
	api            management.API
	access         *accessControl
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(api management.API, auditService audit.Service, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *UserService {
	return &UserService{
		api:            api,
		access:         newAccessControl(auditService),
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// ListUsers searches the user directory. It requires profile:read.
func (s *UserService) ListUsers(ctx context.Context, actor permission.Actor, opts model.UserListOptions) ([]model.User, error) {
	if err := s.access.authorizeAny(ctx, actor, permission.ListUsers, "*"); err != nil {
		return nil, err
	}

	users, err := s.api.ListUsers(ctx, opts)
	if err != nil {
		logger.Error("Error listing users", zap.Error(err), zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, actor permission.Actor, userID string) (*model.User, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.access.authorize(ctx, actor, permission.ReadProfile, target); err != nil {
		return nil, err
	}

	user, err := s.api.GetUser(ctx, target)
	if err != nil {
		logger.Error("Error retrieving user", zap.Error(err), zap.String("userID", target))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a profile patch. Email changes are refused outright
// and only holders of profile:write may change the blocked flag.
func (s *UserService) UpdateUser(ctx context.Context, actor permission.Actor, userID string, body []byte) (*model.User, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.access.authorize(ctx, actor, permission.WriteProfile, target); err != nil {
		return nil, err
	}

	fields, err := s.validationUtil.ParseObject(body)
	if err != nil {
		return nil, err
	}
	if hasKey(fields, "email") {
		return nil, idc_errors.ErrEmailUpdateDisabled
	}
	if hasKey(fields, "blocked") && !permission.WriteProfile.AllowsAny(actor) {
		return nil, idc_errors.ErrBlockedAdminOnly
	}

	var update model.UserUpdate
	if err := s.validationUtil.DecodeStrict(body, &update); err != nil {
		return nil, err
	}

	user, err := s.api.UpdateUser(ctx, target, &update)
	if err != nil {
		logger.Error("Error updating user", zap.Error(err), zap.String("userID", target), zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	changed := make([]string, 0, len(fields))
	for key := range fields {
		changed = append(changed, key)
	}
	sort.Strings(changed)
	publishChange(ctx, s.eventBus, util.EventProfileUpdated, actor, target, map[string]interface{}{"fields": changed})

	logger.Info("User updated successfully", zap.String("userID", target), zap.String("actorID", actor.ID))
	return user, nil
}

// hasKey reports whether fields holds key in any letter case.
func hasKey(fields map[string]json.RawMessage, key string) bool {
	for k := range fields {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// Profile returns the caller's own record with their permissions and the
// console capabilities derived from them.
func (s *UserService) Profile(ctx context.Context, actor permission.Actor) (*model.Profile, error) {
	if err := s.access.authorize(ctx, actor, permission.ReadProfile, actor.ID); err != nil {
		return nil, err
	}

	user, err := s.api.GetUser(ctx, actor.ID)
	if err != nil {
		logger.Error("Error retrieving profile", zap.Error(err), zap.String("userID", actor.ID))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &model.Profile{
		User:         user,
		Permissions:  actor.Permissions.List(),
		Capabilities: permission.Capabilities(actor.Permissions, permission.ViewSelf),
	}, nil
}

// AdminProfile returns another user's record as the admin console renders
// it. It requires admin_ui:access and profile:read; the permissions and
// capabilities are the viewer's, in the admin view.
func (s *UserService) AdminProfile(ctx context.Context, actor permission.Actor, userID string) (*model.Profile, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.access.authorizeAny(ctx, actor, permission.AccessAdminUI, target); err != nil {
		return nil, err
	}
	if err := s.access.authorizeAny(ctx, actor, permission.ReadProfile, target); err != nil {
		return nil, err
	}

	user, err := s.api.GetUser(ctx, target)
	if err != nil {
		logger.Error("Error retrieving user", zap.Error(err), zap.String("userID", target), zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &model.Profile{
		User:         user,
		Permissions:  actor.Permissions.List(),
		Capabilities: permission.Capabilities(actor.Permissions, permission.ViewAdmin),
	}, nil
}

func (s *UserService) UnlinkIdentity(ctx context.Context, actor permission.Actor, userID string, body []byte) error {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return err
	}
	if err := s.access.authorize(ctx, actor, permission.ManageSocialLinks, target); err != nil {
		return err
	}

	var req model.UnlinkIdentityRequest
	if err := s.validationUtil.Decode(body, &req); err != nil {
		return err
	}

	if err := s.api.UnlinkUserIdentity(ctx, target, req.Provider, req.IdentityUserID); err != nil {
		logger.Error("Error unlinking identity", zap.Error(err), zap.String("userID", target), zap.String("provider", req.Provider))
		return fmt.Errorf("failed to unlink identity: %w", err)
	}

	publishChange(ctx, s.eventBus, util.EventIdentityUnlinked, actor, target, map[string]interface{}{
		"provider":       req.Provider,
		"identityUserId": req.IdentityUserID,
	})
	return nil
}

func (s *UserService) ListAuthenticationMethods(ctx context.Context, actor permission.Actor, userID string) ([]model.AuthenticationMethod, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.access.authorize(ctx, actor, permission.ReadSecurity, target); err != nil {
		return nil, err
	}

	methods, err := s.api.ListUserAuthenticationMethods(ctx, target)
	if err != nil {
		logger.Error("Error listing authentication methods", zap.Error(err), zap.String("userID", target))
		return nil, fmt.Errorf("failed to list authentication methods: %w", err)
	}
	return methods, nil
}

func (s *UserService) DeleteAuthenticationMethod(ctx context.Context, actor permission.Actor, userID, methodID string) error {
	if methodID == "" {
		return idc_errors.ErrInvalidMethodID
	}
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return err
	}
	if err := s.access.authorize(ctx, actor, permission.ManagePasskeys, target); err != nil {
		return err
	}

	if err := s.api.DeleteUserAuthenticationMethod(ctx, target, methodID); err != nil {
		logger.Error("Error deleting authentication method", zap.Error(err), zap.String("userID", target), zap.String("methodID", methodID))
		return fmt.Errorf("failed to delete authentication method: %w", err)
	}

	publishChange(ctx, s.eventBus, util.EventAuthMethodDeleted, actor, target, map[string]interface{}{"methodId": methodID})
	return nil
}

// RequestPasswordReset issues a password change ticket and returns its URL.
func (s *UserService) RequestPasswordReset(ctx context.Context, actor permission.Actor, userID string) (string, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return "", err
	}
	if err := s.access.authorize(ctx, actor, permission.ChangePassword, target); err != nil {
		return "", err
	}

	ticket, err := s.api.CreatePasswordChangeTicket(ctx, target)
	if err != nil {
		logger.Error("Error creating password change ticket", zap.Error(err), zap.String("userID", target))
		return "", fmt.Errorf("failed to create password change ticket: %w", err)
	}
	if ticket == nil {
		return "", fmt.Errorf("failed to create password change ticket: empty response")
	}

	publishChange(ctx, s.eventBus, util.EventPasswordResetIssued, actor, target, nil)
	return ticket.Ticket, nil
}

// ResetMFA removes every multifactor provider of the user.
func (s *UserService) ResetMFA(ctx context.Context, actor permission.Actor, userID string) ([]string, error) {
	target, err := resolveTarget(actor, userID)
	if err != nil {
		return nil, err
	}
	if err := s.access.authorize(ctx, actor, permission.ResetMFA, target); err != nil {
		return nil, err
	}

	providers, err := s.api.ResetUserMFA(ctx, target)
	if err != nil {
		logger.Error("Error resetting MFA", zap.Error(err), zap.String("userID", target))
		return nil, fmt.Errorf("failed to reset mfa: %w", err)
	}

	if len(providers) > 0 {
		publishChange(ctx, s.eventBus, util.EventMFAReset, actor, target, map[string]interface{}{"providers": providers})
	}
	return providers, nil
}
