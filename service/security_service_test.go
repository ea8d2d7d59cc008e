// service/security_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/model"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/service"
	mockPackage "github.com/dev-mohitbeniwal/idconsole/test/mock"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

func setupSecurityService() (*service.SecurityService, *mockPackage.MockManagementAPI) {
	api := new(mockPackage.MockManagementAPI)
	svc := service.NewSecurityService(api, newAuditMock(), util.NewValidationUtil(), util.NewEventBus())
	return svc, api
}

func TestSecurityService_ListUserEnrollments(t *testing.T) {
	svc, api := setupSecurityService()
	api.On("ListUserEnrollments", mock.Anything, "auth0|alice").
		Return([]model.Enrollment{{ID: "dev_1", Status: "confirmed"}}, nil).Once()

	enrollments, err := svc.ListUserEnrollments(context.Background(), actorWith("auth0|alice", permission.SecurityReadSelf), "me")

	require.NoError(t, err)
	assert.Equal(t, "dev_1", enrollments[0].ID)
}

func TestSecurityService_GetEnrollment(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyID", func(t *testing.T) {
		svc, _ := setupSecurityService()

		_, err := svc.GetEnrollment(ctx, actorWith("auth0|alice", permission.SecurityRead), "")

		assert.ErrorIs(t, err, idc_errors.ErrInvalidEnrollmentID)
	})

	t.Run("AdminReadsAny", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("GetGuardianEnrollment", mock.Anything, "dev_9").Return(&model.Enrollment{ID: "dev_9"}, nil).Once()

		enrollment, err := svc.GetEnrollment(ctx, actorWith("auth0|admin", permission.SecurityRead), "dev_9")

		require.NoError(t, err)
		assert.Equal(t, "dev_9", enrollment.ID)
		api.AssertNotCalled(t, "ListUserEnrollments", mock.Anything, mock.Anything)
	})

	t.Run("SelfOwned", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("ListUserEnrollments", mock.Anything, "auth0|alice").Return([]model.Enrollment{{ID: "dev_1"}}, nil).Once()
		api.On("GetGuardianEnrollment", mock.Anything, "dev_1").Return(&model.Enrollment{ID: "dev_1"}, nil).Once()

		_, err := svc.GetEnrollment(ctx, actorWith("auth0|alice", permission.SecurityReadSelf), "dev_1")

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("SelfNotOwned", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("ListUserEnrollments", mock.Anything, "auth0|alice").Return([]model.Enrollment{{ID: "dev_1"}}, nil).Once()

		_, err := svc.GetEnrollment(ctx, actorWith("auth0|alice", permission.SecurityReadSelf), "dev_2")

		assert.ErrorIs(t, err, idc_errors.ErrForbidden)
		api.AssertNotCalled(t, "GetGuardianEnrollment", mock.Anything, mock.Anything)
	})

	t.Run("NoPermission", func(t *testing.T) {
		svc, api := setupSecurityService()

		_, err := svc.GetEnrollment(ctx, actorWith("auth0|alice", permission.ProfileReadSelf), "dev_1")

		assert.ErrorIs(t, err, idc_errors.ErrForbidden)
		api.AssertNotCalled(t, "ListUserEnrollments", mock.Anything, mock.Anything)
	})
}

func TestSecurityService_DeleteEnrollment(t *testing.T) {
	ctx := context.Background()

	t.Run("SelfOwned", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("ListUserEnrollments", mock.Anything, "auth0|alice").Return([]model.Enrollment{{ID: "dev_1"}}, nil).Once()
		api.On("GetGuardianEnrollment", mock.Anything, "dev_1").Return(&model.Enrollment{ID: "dev_1"}, nil).Once()
		api.On("DeleteGuardianEnrollment", mock.Anything, "dev_1").Return(nil).Once()

		err := svc.DeleteEnrollment(ctx, actorWith("auth0|alice", permission.SecurityResetMFASelf), "dev_1")

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("SelfOwnedRecordsActor", func(t *testing.T) {
		api := new(mockPackage.MockManagementAPI)
		bus := util.NewEventBus()
		changes := captureChanges(bus, util.EventEnrollmentDeleted)
		svc := service.NewSecurityService(api, newAuditMock(), util.NewValidationUtil(), bus)
		api.On("ListUserEnrollments", mock.Anything, "auth0|alice").Return([]model.Enrollment{{ID: "dev_1"}}, nil).Once()
		api.On("GetGuardianEnrollment", mock.Anything, "dev_1").Return(&model.Enrollment{ID: "dev_1"}, nil).Once()
		api.On("DeleteGuardianEnrollment", mock.Anything, "dev_1").Return(nil).Once()

		require.NoError(t, svc.DeleteEnrollment(ctx, actorWith("auth0|alice", permission.SecurityResetMFASelf), "dev_1"))

		change := nextChange(t, changes)
		assert.Equal(t, "auth0|alice", change.ActorID)
		assert.Equal(t, "auth0|alice", change.TargetID)
		assert.Equal(t, "dev_1", change.Details["enrollmentId"])
	})

	t.Run("AdminRecordsEnrollment", func(t *testing.T) {
		api := new(mockPackage.MockManagementAPI)
		bus := util.NewEventBus()
		changes := captureChanges(bus, util.EventEnrollmentDeleted)
		svc := service.NewSecurityService(api, newAuditMock(), util.NewValidationUtil(), bus)
		api.On("GetGuardianEnrollment", mock.Anything, "dev_9").Return(&model.Enrollment{ID: "dev_9"}, nil).Once()
		api.On("DeleteGuardianEnrollment", mock.Anything, "dev_9").Return(nil).Once()

		require.NoError(t, svc.DeleteEnrollment(ctx, actorWith("auth0|admin", permission.SecurityResetMFA), "dev_9"))

		change := nextChange(t, changes)
		assert.Equal(t, "auth0|admin", change.ActorID)
		assert.Equal(t, "dev_9", change.TargetID)
		api.AssertNotCalled(t, "ListUserEnrollments", mock.Anything, mock.Anything)
	})

	t.Run("LookupFailureStopsDelete", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("GetGuardianEnrollment", mock.Anything, "dev_404").Return(nil, errors.New("not found")).Once()

		err := svc.DeleteEnrollment(ctx, actorWith("auth0|admin", permission.SecurityResetMFA), "dev_404")

		assert.Error(t, err)
		api.AssertNotCalled(t, "DeleteGuardianEnrollment", mock.Anything, mock.Anything)
	})

	t.Run("ReadPermissionIsNotEnough", func(t *testing.T) {
		svc, _ := setupSecurityService()

		err := svc.DeleteEnrollment(ctx, actorWith("auth0|alice", permission.SecurityRead), "dev_1")

		assert.ErrorIs(t, err, idc_errors.ErrForbidden)
	})
}

func TestSecurityService_CreateEnrollmentTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToActor", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("CreateGuardianEnrollmentTicket", mock.Anything, model.EnrollmentTicketParams{
			UserID:                   "auth0|alice",
			AllowMultipleEnrollments: true,
			SendMail:                 false,
		}).Return(&model.EnrollmentTicket{TicketID: "t1", TicketURL: "https://tenant/guardian?ticket=t1"}, nil).Once()

		ticket, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|alice", permission.SecurityWriteSelf), nil)

		require.NoError(t, err)
		assert.Equal(t, "t1", ticket.TicketID)
		api.AssertExpectations(t)
	})

	t.Run("ExplicitOptions", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("CreateGuardianEnrollmentTicket", mock.Anything, model.EnrollmentTicketParams{
			UserID:                   "auth0|bob",
			AllowMultipleEnrollments: true,
			SendMail:                 true,
			Factor:                   "otp",
		}).Return(&model.EnrollmentTicket{TicketID: "t2"}, nil).Once()

		_, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|admin", permission.SecurityWrite),
			[]byte(`{"userId":"auth0|bob","sendMail":true,"factor":"otp"}`))

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("ValidationBeforeAuthorization", func(t *testing.T) {
		svc, _ := setupSecurityService()

		_, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|alice"), []byte(`{"userId":""}`))

		var verr *idc_errors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.FieldErrors, "userId")
	})

	t.Run("MalformedBodyIsEmptyRequest", func(t *testing.T) {
		svc, api := setupSecurityService()
		api.On("CreateGuardianEnrollmentTicket", mock.Anything, model.EnrollmentTicketParams{
			UserID:                   "auth0|alice",
			AllowMultipleEnrollments: true,
		}).Return(&model.EnrollmentTicket{TicketID: "t3"}, nil).Once()

		ticket, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|alice", permission.SecurityWriteSelf), []byte(`{"userId":`))

		require.NoError(t, err)
		assert.Equal(t, "t3", ticket.TicketID)
		api.AssertExpectations(t)
	})

	t.Run("NullBodyRejected", func(t *testing.T) {
		svc, api := setupSecurityService()

		_, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|alice", permission.SecurityWriteSelf), []byte(`null`))

		var verr *idc_errors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"Expected object, received null"}, verr.FormErrors)
		api.AssertNotCalled(t, "CreateGuardianEnrollmentTicket", mock.Anything, mock.Anything)
	})

	t.Run("UnknownKeyRejected", func(t *testing.T) {
		svc, api := setupSecurityService()

		_, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|alice", permission.SecurityWriteSelf), []byte(`{"UserId":"auth0|bob"}`))

		assert.ErrorIs(t, err, idc_errors.ErrInvalidPayload)
		api.AssertNotCalled(t, "CreateGuardianEnrollmentTicket", mock.Anything, mock.Anything)
	})

	t.Run("OtherUserWithSelfOnly", func(t *testing.T) {
		svc, _ := setupSecurityService()

		_, err := svc.CreateEnrollmentTicket(ctx, actorWith("auth0|alice", permission.SecurityWriteSelf), []byte(`{"userId":"auth0|bob"}`))

		assert.ErrorIs(t, err, idc_errors.ErrForbidden)
	})
}
