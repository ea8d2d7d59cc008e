package management

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/idconsole/model"
)

// DefaultPerPage is the user list page size when none is requested.
const DefaultPerPage = 25

// API is the set of Management API operations the console performs.
type API interface {
	ListUsers(ctx context.Context, opts model.UserListOptions) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	UpdateUser(ctx context.Context, userID string, update *model.UserUpdate) (*model.User, error)

	ListUserAuthenticationMethods(ctx context.Context, userID string) ([]model.AuthenticationMethod, error)
	DeleteUserAuthenticationMethod(ctx context.Context, userID, methodID string) error

	ListUserSessions(ctx context.Context, userID string) (*model.SessionsResponse, error)
	RevokeUserSessions(ctx context.Context, userID string) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	RevokeSession(ctx context.Context, sessionID string) error

	CreatePasswordChangeTicket(ctx context.Context, userID string) (*model.PasswordChangeTicket, error)
	ResetUserMFA(ctx context.Context, userID string) ([]string, error)
	UnlinkUserIdentity(ctx context.Context, userID, provider, identityUserID string) error

	ListUserEnrollments(ctx context.Context, userID string) ([]model.Enrollment, error)
	GetGuardianEnrollment(ctx context.Context, enrollmentID string) (*model.Enrollment, error)
	DeleteGuardianEnrollment(ctx context.Context, enrollmentID string) error
	CreateGuardianEnrollmentTicket(ctx context.Context, params model.EnrollmentTicketParams) (*model.EnrollmentTicket, error)
}

var _ API = (*Gateway)(nil)

func userPath(userID string) string {
	return "/users/" + url.PathEscape(userID)
}

func (g *Gateway) ListUsers(ctx context.Context, opts model.UserListOptions) ([]model.User, error) {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Query != "" {
		params.Set("q", opts.Query)
		params.Set("search_engine", "v3")
	}

	users, err := callJSON[[]model.User](ctx, g, "users.list", http.MethodGet, "/users?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []model.User{}, nil
	}
	return *users, nil
}

func (g *Gateway) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return callJSON[model.User](ctx, g, "users.get", http.MethodGet, userPath(userID), nil)
}

func (g *Gateway) UpdateUser(ctx context.Context, userID string, update *model.UserUpdate) (*model.User, error) {
	return callJSON[model.User](ctx, g, "users.update", http.MethodPatch, userPath(userID), update)
}

// ListUserAuthenticationMethods accepts both the bare array and the
// {"authenticators": [...]} envelope the provider may answer with.
func (g *Gateway) ListUserAuthenticationMethods(ctx context.Context, userID string) ([]model.AuthenticationMethod, error) {
	raw, err := g.call(ctx, "authentication_methods.list", http.MethodGet, userPath(userID)+"/authentication-methods", nil)
	if err != nil {
		return nil, err
	}
	methods := []model.AuthenticationMethod{}
	if raw == nil {
		return methods, nil
	}

	if err := json.Unmarshal(raw, &methods); err == nil {
		return methods, nil
	}

	var envelope struct {
		Authenticators []model.AuthenticationMethod `json:"authenticators"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Authenticators == nil {
		return []model.AuthenticationMethod{}, nil
	}
	return envelope.Authenticators, nil
}

func (g *Gateway) DeleteUserAuthenticationMethod(ctx context.Context, userID, methodID string) error {
	_, err := g.call(ctx, "authentication_methods.delete", http.MethodDelete,
		userPath(userID)+"/authentication-methods/"+url.PathEscape(methodID), nil)
	return err
}

func (g *Gateway) ListUserSessions(ctx context.Context, userID string) (*model.SessionsResponse, error) {
	resp, err := callJSON[model.SessionsResponse](ctx, g, "sessions.list", http.MethodGet, userPath(userID)+"/sessions", nil)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		resp = &model.SessionsResponse{}
	}
	if resp.Sessions == nil {
		resp.Sessions = []model.Session{}
	}
	return resp, nil
}

func (g *Gateway) RevokeUserSessions(ctx context.Context, userID string) error {
	_, err := g.call(ctx, "sessions.revoke_all", http.MethodDelete, userPath(userID)+"/sessions", nil)
	return err
}

func (g *Gateway) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	return callJSON[model.Session](ctx, g, "sessions.get", http.MethodGet, "/sessions/"+url.PathEscape(sessionID), nil)
}

func (g *Gateway) RevokeSession(ctx context.Context, sessionID string) error {
	_, err := g.call(ctx, "sessions.revoke", http.MethodPost, "/sessions/"+url.PathEscape(sessionID)+"/revoke", nil)
	return err
}

// CreatePasswordChangeTicket issues a password change link for the user,
// scoped to the configured database connection when one is set.
func (g *Gateway) CreatePasswordChangeTicket(ctx context.Context, userID string) (*model.PasswordChangeTicket, error) {
	params := model.PasswordChangeTicketParams{
		UserID:       userID,
		ConnectionID: g.cfg.PasswordConnectionID,
		ResultURL:    g.cfg.PasswordResetRedirectURL,
	}
	return callJSON[model.PasswordChangeTicket](ctx, g, "tickets.password_change", http.MethodPost, "/tickets/password-change", params)
}

// ResetUserMFA removes every multifactor provider the user has configured
// and returns the providers that were removed.
func (g *Gateway) ResetUserMFA(ctx context.Context, userID string) ([]string, error) {
	user, err := g.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || len(user.Multifactor) == 0 {
		return []string{}, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, provider := range user.Multifactor {
		provider := provider
		eg.Go(func() error {
			_, err := g.call(egCtx, "multifactor.delete", http.MethodDelete,
				userPath(userID)+"/multifactor/"+url.PathEscape(provider), nil)
			if err != nil {
				return fmt.Errorf("delete %s provider: %w", provider, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return user.Multifactor, nil
}

func (g *Gateway) UnlinkUserIdentity(ctx context.Context, userID, provider, identityUserID string) error {
	path := userPath(userID) + "/identities/" + url.PathEscape(provider) + "/" + url.PathEscape(identityUserID)
	_, err := g.call(ctx, "identities.unlink", http.MethodDelete, path, nil)
	return err
}

func (g *Gateway) ListUserEnrollments(ctx context.Context, userID string) ([]model.Enrollment, error) {
	enrollments, err := callJSON[[]model.Enrollment](ctx, g, "enrollments.list", http.MethodGet, userPath(userID)+"/enrollments", nil)
	if err != nil {
		return nil, err
	}
	if enrollments == nil {
		return []model.Enrollment{}, nil
	}
	return *enrollments, nil
}

func (g *Gateway) GetGuardianEnrollment(ctx context.Context, enrollmentID string) (*model.Enrollment, error) {
	return callJSON[model.Enrollment](ctx, g, "guardian.enrollments.get", http.MethodGet,
		"/guardian/enrollments/"+url.PathEscape(enrollmentID), nil)
}

func (g *Gateway) DeleteGuardianEnrollment(ctx context.Context, enrollmentID string) error {
	_, err := g.call(ctx, "guardian.enrollments.delete", http.MethodDelete,
		"/guardian/enrollments/"+url.PathEscape(enrollmentID), nil)
	return err
}

func (g *Gateway) CreateGuardianEnrollmentTicket(ctx context.Context, params model.EnrollmentTicketParams) (*model.EnrollmentTicket, error) {
	return callJSON[model.EnrollmentTicket](ctx, g, "guardian.enrollments.ticket", http.MethodPost, "/guardian/enrollments/ticket", params)
}
