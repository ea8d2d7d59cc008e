package util_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

func serviceErrorResponse(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/management/users/me", nil)
	util.RespondWithServiceError(c, err)
	return w
}

func TestRespondWithServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"NoSession", idc_errors.ErrNoSession, http.StatusUnauthorized, "Unauthorized"},
		{"Forbidden", idc_errors.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"WrappedForbidden", fmt.Errorf("check: %w", idc_errors.ErrForbidden), http.StatusForbidden, "Forbidden"},
		{"Blocked", idc_errors.ErrBlockedAdminOnly, http.StatusForbidden, "Blocked status can only be modified by admins."},
		{"Email", idc_errors.ErrEmailUpdateDisabled, http.StatusBadRequest, "Email updates are disabled for now."},
		{"SessionID", idc_errors.ErrInvalidSessionID, http.StatusBadRequest, "Invalid session id"},
		{"TimeRange", fmt.Errorf("%w: bad", idc_errors.ErrInvalidTimeRange), http.StatusBadRequest, "Invalid time range"},
		{"Upstream", errors.New("auth0 get user failed (502): bad gateway"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serviceErrorResponse(tc.err)

			assert.Equal(t, tc.code, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestRespondWithServiceError_ValidationDetails(t *testing.T) {
	verr := idc_errors.NewValidationError()
	verr.AddField("name", "String must contain at least 2 character(s)")

	w := serviceErrorResponse(verr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error   string `json:"error"`
		Details struct {
			FormErrors  []string            `json:"formErrors"`
			FieldErrors map[string][]string `json:"fieldErrors"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid payload", body.Error)
	assert.Empty(t, body.Details.FormErrors)
	assert.Equal(t, []string{"String must contain at least 2 character(s)"}, body.Details.FieldErrors["name"])
}

func TestGetActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := util.GetActor(c)
	assert.ErrorIs(t, err, idc_errors.ErrNoSession)

	util.SetActor(c, permission.Actor{ID: "auth0|alice", Permissions: permission.NewSet("profile:read_self")})
	actor, err := util.GetActor(c)
	require.NoError(t, err)
	assert.Equal(t, "auth0|alice", actor.ID)
	assert.True(t, actor.Permissions.Has(permission.ProfileReadSelf))
}
