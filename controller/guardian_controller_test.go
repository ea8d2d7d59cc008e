// controller/guardian_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/idconsole/controller"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/model"
	mock_service "github.com/dev-mohitbeniwal/idconsole/test/service_mock"
)

func TestGuardianController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSecurityService := mock_service.NewMockISecurityService(ctrl)
	guardianController := controller.NewGuardianController(mockSecurityService)
	router, api := setupRouter()
	guardianController.RegisterRoutes(api.Group("/management"))

	t.Run("ListUserEnrollments_Success", func(t *testing.T) {
		mockSecurityService.EXPECT().
			ListUserEnrollments(gomock.Any(), testActor, "me").
			Return([]model.Enrollment{{ID: "dev_1", Status: "confirmed"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/management/users/me/enrollments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"enrollments":[{"id":"dev_1","status":"confirmed"}]}`, w.Body.String())
	})

	t.Run("GetEnrollment_Success", func(t *testing.T) {
		mockSecurityService.EXPECT().
			GetEnrollment(gomock.Any(), testActor, "dev_1").
			Return(&model.Enrollment{ID: "dev_1"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/management/guardian/enrollments/dev_1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"enrollment":{"id":"dev_1"}}`, w.Body.String())
	})

	t.Run("DeleteEnrollment_Forbidden", func(t *testing.T) {
		mockSecurityService.EXPECT().
			DeleteEnrollment(gomock.Any(), testActor, "dev_2").
			Return(idc_errors.ErrForbidden)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/management/guardian/enrollments/dev_2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("CreateEnrollmentTicket_Success", func(t *testing.T) {
		body := `{"sendMail":true}`
		mockSecurityService.EXPECT().
			CreateEnrollmentTicket(gomock.Any(), testActor, []byte(body)).
			Return(&model.EnrollmentTicket{TicketID: "t1", TicketURL: "https://tenant/guardian?ticket=t1"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/management/guardian/enrollments/ticket", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ticket":{"ticket_id":"t1","ticket_url":"https://tenant/guardian?ticket=t1"}}`, w.Body.String())
	})
}
