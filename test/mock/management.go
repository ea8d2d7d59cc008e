// test/mock/management.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/idconsole/management"
	"github.com/dev-mohitbeniwal/idconsole/model"
)

// MockManagementAPI is a mock implementation of management.API
type MockManagementAPI struct {
	mock.Mock
}

var _ management.API = (*MockManagementAPI)(nil)

func (m *MockManagementAPI) ListUsers(ctx context.Context, opts model.UserListOptions) ([]model.User, error) {
	args := m.Called(ctx, opts)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockManagementAPI) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockManagementAPI) UpdateUser(ctx context.Context, userID string, update *model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, userID, update)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockManagementAPI) ListUserAuthenticationMethods(ctx context.Context, userID string) ([]model.AuthenticationMethod, error) {
	args := m.Called(ctx, userID)
	methods, _ := args.Get(0).([]model.AuthenticationMethod)
	return methods, args.Error(1)
}

func (m *MockManagementAPI) DeleteUserAuthenticationMethod(ctx context.Context, userID, methodID string) error {
	args := m.Called(ctx, userID, methodID)
	return args.Error(0)
}

func (m *MockManagementAPI) ListUserSessions(ctx context.Context, userID string) (*model.SessionsResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*model.SessionsResponse)
	return resp, args.Error(1)
}

func (m *MockManagementAPI) RevokeUserSessions(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockManagementAPI) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	args := m.Called(ctx, sessionID)
	s, _ := args.Get(0).(*model.Session)
	return s, args.Error(1)
}

func (m *MockManagementAPI) RevokeSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockManagementAPI) CreatePasswordChangeTicket(ctx context.Context, userID string) (*model.PasswordChangeTicket, error) {
	args := m.Called(ctx, userID)
	ticket, _ := args.Get(0).(*model.PasswordChangeTicket)
	return ticket, args.Error(1)
}

func (m *MockManagementAPI) ResetUserMFA(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	providers, _ := args.Get(0).([]string)
	return providers, args.Error(1)
}

func (m *MockManagementAPI) UnlinkUserIdentity(ctx context.Context, userID, provider, identityUserID string) error {
	args := m.Called(ctx, userID, provider, identityUserID)
	return args.Error(0)
}

func (m *MockManagementAPI) ListUserEnrollments(ctx context.Context, userID string) ([]model.Enrollment, error) {
	args := m.Called(ctx, userID)
	enrollments, _ := args.Get(0).([]model.Enrollment)
	return enrollments, args.Error(1)
}

func (m *MockManagementAPI) GetGuardianEnrollment(ctx context.Context, enrollmentID string) (*model.Enrollment, error) {
	args := m.Called(ctx, enrollmentID)
	enrollment, _ := args.Get(0).(*model.Enrollment)
	return enrollment, args.Error(1)
}

func (m *MockManagementAPI) DeleteGuardianEnrollment(ctx context.Context, enrollmentID string) error {
	args := m.Called(ctx, enrollmentID)
	return args.Error(0)
}

func (m *MockManagementAPI) CreateGuardianEnrollmentTicket(ctx context.Context, params model.EnrollmentTicketParams) (*model.EnrollmentTicket, error) {
	args := m.Called(ctx, params)
	ticket, _ := args.Get(0).(*model.EnrollmentTicket)
	return ticket, args.Error(1)
}
