// service/audit_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/service"
)

func TestAuditService_QueryLogs(t *testing.T) {
	ctx := context.Background()
	admin := actorWith("auth0|admin", permission.AdminUIAccess)

	t.Run("RequiresAdminUI", func(t *testing.T) {
		auditMock := newAuditMock()
		svc := service.NewAuditService(auditMock)

		_, err := svc.QueryLogs(ctx, actorWith("auth0|alice", permission.ProfileRead), "", "", "", "")

		assert.ErrorIs(t, err, idc_errors.ErrForbidden)
		auditMock.AssertNotCalled(t, "QueryLogs", mock.Anything, mock.Anything)
	})

	t.Run("ExplicitRangeAndFilters", func(t *testing.T) {
		auditMock := newAuditMock()
		svc := service.NewAuditService(auditMock)
		from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		auditMock.On("QueryLogs", mock.Anything, mock.MatchedBy(func(q audit.Query) bool {
			return q.From.Equal(from) && q.To.Equal(to) && q.ActorID == "auth0|alice" && q.TargetID == "auth0|bob"
		})).Return([]audit.AuditLog{{ID: "1", Action: "profile.write"}}, nil).Once()

		logs, err := svc.QueryLogs(ctx, admin, "2024-05-01T00:00:00Z", "2024-05-02T00:00:00Z", "auth0|alice", "auth0|bob")

		require.NoError(t, err)
		assert.Len(t, logs, 1)
		auditMock.AssertExpectations(t)
	})

	t.Run("DefaultWindow", func(t *testing.T) {
		auditMock := newAuditMock()
		svc := service.NewAuditService(auditMock)
		auditMock.On("QueryLogs", mock.Anything, mock.MatchedBy(func(q audit.Query) bool {
			return q.To.Sub(q.From) == service.DefaultAuditWindow
		})).Return([]audit.AuditLog{}, nil).Once()

		_, err := svc.QueryLogs(ctx, admin, "", "", "", "")

		require.NoError(t, err)
		auditMock.AssertExpectations(t)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		svc := service.NewAuditService(newAuditMock())

		_, err := svc.QueryLogs(ctx, admin, "2024-05-02T00:00:00Z", "2024-05-01T00:00:00Z", "", "")

		assert.ErrorIs(t, err, idc_errors.ErrInvalidTimeRange)
	})

	t.Run("Unparseable", func(t *testing.T) {
		svc := service.NewAuditService(newAuditMock())

		_, err := svc.QueryLogs(ctx, admin, "yesterday", "", "", "")

		assert.ErrorIs(t, err, idc_errors.ErrInvalidTimeRange)
	})
}
